package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pagescope/internal/config"
	"pagescope/internal/eventbus"
	"pagescope/internal/gateway"
	"pagescope/internal/outline"
	"pagescope/internal/search"
	"pagescope/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	var searchURL string
	var structureURL string
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&searchURL, "search-url", "", "Search gateway base URL (overrides config)")
	flag.StringVar(&structureURL, "structure-url", "", "Structure gateway base URL (overrides config)")
	flag.Parse()

	// Remaining args form an initial query to run on startup
	initialQuery := strings.TrimSpace(strings.Join(flag.Args(), " "))

	// Set up logging
	logFile, err := os.OpenFile("pagescope.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	configSvc := config.NewConfigService()
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
		if err != nil {
			fmt.Printf("Error loading config %s: %v\n", configPath, err)
			os.Exit(1)
		}
	} else {
		cfg, err = configSvc.Load()
		if err != nil {
			log.Printf("Error loading config: %v", err)
			cfg = config.DefaultConfig()
		}
	}

	// Flag overrides
	if searchURL != "" {
		cfg.Gateways.SearchURL = searchURL
	}
	if structureURL != "" {
		cfg.Gateways.StructureURL = structureURL
	}

	// Create event bus
	bus := eventbus.New()

	// Initialize services; both subscribe to the bus automatically
	_ = search.NewService(bus, gateway.NewSearchClient(cfg.Gateways.SearchURL))
	_ = outline.NewService(bus, gateway.NewOutlineFetcher(cfg.Gateways.StructureURL))

	// Create UI model
	uiModel := ui.NewModel(cfg, bus, initialQuery)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventSearchCompleted, forward)
	bus.Subscribe(eventbus.EventSearchFailed, forward)
	bus.Subscribe(eventbus.EventOutlineFetched, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	log.Printf("Starting UI (search gateway %s, structure gateway %s)",
		cfg.Gateways.SearchURL, cfg.Gateways.StructureURL)
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Cleanup
	close(eventChan)
}
