package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/dxfolio"
	projectConfigDir = ".dxfolio"
	configFileName   = "config.yaml"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// LoadConfig loads the configuration by layering default, user, and project
// settings.
func LoadConfig() (Config, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional.
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if config, err = overlayIfExists(config, userConfigPath); err != nil {
		return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if config, err = overlayIfExists(config, projectConfigPath); err != nil {
		return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	return config, Validate(config)
}

// LoadConfigFromPath merges a single file over the defaults.
func LoadConfigFromPath(path string) (Config, error) {
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	config := mergeConfigs(GetDefaultConfig(), overlay)
	return config, Validate(config)
}

func overlayIfExists(base Config, path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in the
// overlay leave the base untouched.
func mergeConfigs(base, overlay Config) Config {
	merged := base
	if overlay.Host != "" {
		merged.Host = overlay.Host
	}
	if overlay.SiteURL != "" {
		merged.SiteURL = overlay.SiteURL
	}
	if overlay.ContactEmail != "" {
		merged.ContactEmail = overlay.ContactEmail
	}
	if overlay.ResumePath != "" {
		merged.ResumePath = overlay.ResumePath
	}
	if overlay.DownloadDir != "" {
		merged.DownloadDir = overlay.DownloadDir
	}
	if overlay.Theme != "" {
		merged.Theme = overlay.Theme
	}
	if overlay.NarrowWidth != 0 {
		merged.NarrowWidth = overlay.NarrowWidth
	}
	if overlay.CatalogPath != "" {
		merged.CatalogPath = overlay.CatalogPath
	}
	if len(overlay.SimulationSteps) > 0 {
		merged.SimulationSteps = append([]SimulationStep(nil), overlay.SimulationSteps...)
	}
	return merged
}

// Validate checks field values.
func Validate(c Config) error {
	switch strings.ToLower(c.Theme) {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("%w: theme %q must be %q or %q", ErrInvalidConfig, c.Theme, ThemeDark, ThemeLight)
	}
	if c.NarrowWidth < 0 {
		return fmt.Errorf("%w: narrowWidth must not be negative", ErrInvalidConfig)
	}
	for i, s := range c.SimulationSteps {
		if s.Delay < 0 {
			return fmt.Errorf("%w: simulationSteps[%d] has a negative delay", ErrInvalidConfig, i)
		}
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
