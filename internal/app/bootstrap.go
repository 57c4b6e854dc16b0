package app

import (
	"fmt"
	"os"

	"dxfolio/internal/action"
	"dxfolio/internal/catalog"
	"dxfolio/internal/config"
	"dxfolio/internal/desktop"
	"dxfolio/internal/effect"
	"dxfolio/internal/session"
	"dxfolio/pkg/logging"
)

const bootstrapSubsystem = "Bootstrap"

// Application is the main application structure that bootstraps and runs
// dxfolio.
type Application struct {
	config  *Config
	catalog *catalog.Catalog
	machine *session.Machine
	desktop *desktop.Desktop
}

// NewApplication loads configuration and the catalog and wires the session
// machine. Logging goes to stderr so command output on stdout stays clean.
func NewApplication(cfg *Config) (*Application, error) {
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	logging.InitForCLI(appLogLevel, os.Stderr)

	settings, err := loadSettings(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg.Settings = &settings

	catalogPath := settings.CatalogPath
	if cfg.CatalogPath != "" {
		catalogPath = cfg.CatalogPath
	}
	cat, err := loadCatalog(catalogPath)
	if err != nil {
		return nil, err
	}

	resumePath, err := config.ExpandHome(settings.ResumePath)
	if err != nil {
		return nil, fmt.Errorf("resume path: %w", err)
	}
	downloadDir, err := config.ExpandHome(settings.DownloadDir)
	if err != nil {
		return nil, fmt.Errorf("download dir: %w", err)
	}

	machine := session.NewMachine(session.Env{
		Catalog:         cat,
		Host:            settings.Host,
		SiteURL:         settings.SiteURL,
		ContactEmail:    settings.ContactEmail,
		ResumePath:      resumePath,
		SimulationSteps: simulationSteps(settings.SimulationSteps),
	})

	return &Application{
		config:  cfg,
		catalog: cat,
		machine: machine,
		desktop: desktop.New(desktop.SystemClipboard(), downloadDir),
	}, nil
}

func loadSettings(path string) (config.Config, error) {
	if path != "" {
		settings, err := config.LoadConfigFromPath(path)
		if err != nil {
			logging.Error(bootstrapSubsystem, err, "Failed to load configuration from path: %s", path)
			return config.Config{}, fmt.Errorf("failed to load configuration from path %s: %w", path, err)
		}
		logging.Debug(bootstrapSubsystem, "Loaded configuration from custom path: %s", path)
		return settings, nil
	}
	settings, err := config.LoadConfig()
	if err != nil {
		logging.Error(bootstrapSubsystem, err, "Failed to load configuration")
		return config.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	logging.Debug(bootstrapSubsystem, "Loaded configuration using layered approach")
	return settings, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		cat, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("built-in catalog: %w", err)
		}
		return cat, nil
	}
	expanded, err := config.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("catalog path: %w", err)
	}
	cat, err := catalog.Load(expanded)
	if err != nil {
		logging.Error(bootstrapSubsystem, err, "Failed to load catalog: %s", expanded)
		return nil, fmt.Errorf("failed to load catalog %s: %w", expanded, err)
	}
	logging.Debug(bootstrapSubsystem, "Loaded catalog %s (%d entities)", expanded, cat.Len())
	return cat, nil
}

// simulationSteps converts configured steps. None configured means the
// built-in run.
func simulationSteps(steps []config.SimulationStep) []effect.Step {
	if len(steps) == 0 {
		return action.DefaultSimulationSteps
	}
	out := make([]effect.Step, len(steps))
	for i, s := range steps {
		out[i] = effect.Step{Delay: s.Delay, Line: s.Line}
	}
	return out
}

// Catalog returns the loaded catalog.
func (a *Application) Catalog() *catalog.Catalog {
	return a.catalog
}

// Machine returns the session machine.
func (a *Application) Machine() *session.Machine {
	return a.machine
}
