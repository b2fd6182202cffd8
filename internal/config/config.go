package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFileName is the config file looked up in the working directory
// and under the user config directory.
const DefaultFileName = ".pagescope.toml"

// Config represents the application configuration. The same file serves
// both the TUI client and the pagescoped daemon.
type Config struct {
	Gateways   GatewaySettings `toml:"gateways"`
	UISettings UISettings      `toml:"ui"`
	Server     ServerSettings  `toml:"server"`
}

// GatewaySettings holds the base addresses of the two remote services the
// client talks to.
type GatewaySettings struct {
	SearchURL    string `toml:"search_url"`
	StructureURL string `toml:"structure_url"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowSnippets bool `toml:"show_snippets"`
	ShowURLs     bool `toml:"show_urls"`
}

// ServerSettings configures the pagescoped daemon.
type ServerSettings struct {
	Listen         string `toml:"listen"`
	GoogleAPIKey   string `toml:"google_api_key"`
	SearchEngineID string `toml:"search_engine_id"`
	Env            string `toml:"env"` // dev or prod, selects log format
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	pagescopeDir := filepath.Join(configDir, "pagescope")
	os.MkdirAll(pagescopeDir, 0755)

	return &configService{
		filePath: filepath.Join(pagescopeDir, DefaultFileName),
	}
}

// Load loads the configuration from the default location, falling back to
// defaults when no file exists yet.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so a partial file leaves the rest intact
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Gateways.SearchURL == "" || cfg.Gateways.StructureURL == "" {
		return nil, fmt.Errorf("config %s: gateway addresses must not be empty", path)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration. Both gateways point at
// a local pagescoped instance.
func DefaultConfig() *Config {
	return &Config{
		Gateways: GatewaySettings{
			SearchURL:    "http://localhost:5000",
			StructureURL: "http://localhost:5000",
		},
		UISettings: UISettings{
			ShowSnippets: true,
			ShowURLs:     true,
		},
		Server: ServerSettings{
			Listen: ":5000",
			Env:    "dev",
		},
	}
}
