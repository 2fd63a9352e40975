package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/primrose-mcp/primrose-mcp-trello/internal/logging"
	"gopkg.in/yaml.v3"
)

const APP_NAME = "primrose-mcp-trello" // application name used for config directory

// Config holds the gateway's server configuration. Every field has a
// working default; a config file and environment variables are both
// optional. Tenant credentials are never part of the configuration - they
// arrive per request in HTTP headers.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `yaml:"addr"`
	// TrelloBaseURL is the root of the upstream API, overridable for
	// testing against a local fake.
	TrelloBaseURL string `yaml:"trello_base_url"`
	// RequestTimeout bounds each outbound Trello call.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:           ":8080",
		TrelloBaseURL:  "https://api.trello.com/1",
		RequestTimeout: 30 * time.Second,
	}
}

// ConfigPath returns the standard config file path for the current platform
func ConfigPath() string {
	return filepath.Join(xdg.ConfigHome, APP_NAME, "config.yaml")
}

// Load builds the effective configuration: defaults, then the YAML config
// file when one exists, then environment variables. A .env file in the
// working directory is folded into the environment first.
func Load() (*Config, error) {
	// Missing .env is the normal case; any other read error is ignored
	// too since the file is a development convenience.
	_ = godotenv.Load()

	cfg := Default()

	path := ConfigPath()
	if _, err := os.Stat(path); err == nil {
		loaded, err := LoadFrom(path)
		if err != nil {
			return nil, err
		}
		cfg.merge(loaded)
	}

	cfg.applyEnv()
	return cfg, nil
}

// LoadFrom loads config from a specific path
func LoadFrom(path string) (*Config, error) {
	logging.Debug("Reading config file", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// merge copies the set fields of other over cfg.
func (cfg *Config) merge(other *Config) {
	if other.Addr != "" {
		cfg.Addr = other.Addr
	}
	if other.TrelloBaseURL != "" {
		cfg.TrelloBaseURL = other.TrelloBaseURL
	}
	if other.RequestTimeout != 0 {
		cfg.RequestTimeout = other.RequestTimeout
	}
}

// applyEnv folds environment overrides over cfg.
func (cfg *Config) applyEnv() {
	if addr := os.Getenv("PRIMROSE_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if baseURL := os.Getenv("TRELLO_BASE_URL"); baseURL != "" {
		cfg.TrelloBaseURL = baseURL
	}
	if timeout := os.Getenv("PRIMROSE_REQUEST_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			logging.Warn("Ignoring invalid PRIMROSE_REQUEST_TIMEOUT", "value", timeout, "error", err)
		} else {
			cfg.RequestTimeout = d
		}
	}
}
