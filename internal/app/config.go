package app

import (
	"dxfolio/internal/config"
)

// Config holds the application configuration
type Config struct {
	// ConfigPath loads a single config file instead of the layered lookup.
	ConfigPath string

	// CatalogPath overrides the catalog named in the config file.
	CatalogPath string

	// Debug settings
	Debug bool

	// Version is shown in the agent handshake and the TUI.
	Version string

	// Settings is filled in by NewApplication.
	Settings *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(configPath, catalogPath string, debug bool, version string) *Config {
	return &Config{
		ConfigPath:  configPath,
		CatalogPath: catalogPath,
		Debug:       debug,
		Version:     version,
	}
}
