package model

import (
	"time"

	"dxfolio/internal/schedule"
	"dxfolio/internal/tui/design"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/patrickmn/go-cache"
)

const (
	docCacheTTL     = 10 * time.Minute
	docCacheCleanup = 20 * time.Minute
)

// InitialModel constructs the initial model. The session state assumes a wide
// screen until the first window size arrives.
func InitialModel(cfg TUIConfig) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "type 'help'"
	ti.CharLimit = 256

	fi := textinput.New()
	fi.Prompt = "/"
	fi.Placeholder = "filter"
	fi.CharLimit = 64

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = design.TextAccentStyle

	m := Model{
		CurrentAppMode:   ModeInitializing,
		Focus:            FocusCanvas,
		DebugMode:        cfg.DebugMode,
		Version:          cfg.Version,
		NarrowWidth:      cfg.NarrowWidth,
		InitialLight:     cfg.LightMode,
		Machine:          cfg.Machine,
		State:            cfg.Machine.Initial(false, cfg.LightMode),
		Schedules:        schedule.NewRegistry(),
		Desktop:          cfg.Desktop,
		CommandInput:     ti,
		FilterInput:      fi,
		TerminalViewport: viewport.New(0, 0),
		DocViewport:      viewport.New(0, 0),
		DocCache:         cache.New(docCacheTTL, docCacheCleanup),
		ActivityLog:      make([]string, 0),
		ActivityLogDirty: true,
		LogViewport:      viewport.New(0, 0),
		Spinner:          s,
		Keys:             DefaultKeyMap(),
		Help:             help.New(),
		LogChannel:       cfg.LogChannel,
	}
	return &m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.Spinner.Tick)
}
