package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"pagescope/internal/cache"
	"pagescope/internal/config"
	"pagescope/internal/extract"
	"pagescope/internal/serp"
	"pagescope/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	listen := flag.String("listen", "", "listen address (overrides config)")
	flag.Parse()

	svc := config.NewConfigService()
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = svc.LoadFromPath(*configPath)
	} else {
		cfg, err = svc.Load()
	}
	if err != nil {
		panic("failed to load config: " + err.Error())
	}
	if *listen != "" {
		cfg.Server.Listen = *listen
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		cfg.Server.GoogleAPIKey = key
	}
	if id := os.Getenv("SEARCH_ENGINE_ID"); id != "" {
		cfg.Server.SearchEngineID = id
	}

	logger, err := newLogger(cfg.Server.Env)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting pagescoped",
		zap.String("listen", cfg.Server.Listen),
		zap.String("env", cfg.Server.Env),
		zap.Bool("search_configured", cfg.Server.GoogleAPIKey != "" && cfg.Server.SearchEngineID != ""),
	)

	provider := serp.NewGoogleCSE(cfg.Server.GoogleAPIKey, cfg.Server.SearchEngineID, logger)
	extractor := extract.New(logger)
	outlines, err := cache.New(cache.DefaultSize)
	if err != nil {
		logger.Fatal("Failed to create outline cache", zap.Error(err))
	}
	gateway := server.New(provider, extractor, outlines, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Listen,
		Handler:      gateway.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.Server.Listen))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
