package config

import "time"

// Theme values accepted in the theme field.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config is the top-level configuration structure for dxfolio.
type Config struct {
	// Host is shown in the terminal prompt: user@<host>:~$
	Host         string `yaml:"host,omitempty"`
	SiteURL      string `yaml:"siteURL,omitempty"`
	ContactEmail string `yaml:"contactEmail,omitempty"`
	// ResumePath is the file copied by the Save Resume action.
	ResumePath  string `yaml:"resumePath,omitempty"`
	DownloadDir string `yaml:"downloadDir,omitempty"`
	Theme       string `yaml:"theme,omitempty"`
	// NarrowWidth is the terminal width, in columns, below which the session
	// starts with the sidebar closed and a smaller scale.
	NarrowWidth     int              `yaml:"narrowWidth,omitempty"`
	CatalogPath     string           `yaml:"catalogPath,omitempty"`
	SimulationSteps []SimulationStep `yaml:"simulationSteps,omitempty"`
}

// SimulationStep is one deferred line of the Simulation action.
type SimulationStep struct {
	Delay time.Duration `yaml:"delay"`
	Line  string        `yaml:"line"`
}
