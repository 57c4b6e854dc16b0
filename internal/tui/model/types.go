package model

import (
	"dxfolio/internal/catalog"
	"dxfolio/internal/desktop"
	"dxfolio/internal/effect"
	"dxfolio/internal/schedule"
	"dxfolio/internal/session"
	"dxfolio/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/patrickmn/go-cache"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeInitializing AppMode = iota
	ModeMain
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeInitializing:
		return "Initializing"
	case ModeMain:
		return "Main"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// Focus is the pane receiving keyboard input.
type Focus int

const (
	FocusCanvas Focus = iota
	FocusSidebar
	FocusTerminal
)

// String returns the focus name.
func (f Focus) String() string {
	switch f {
	case FocusCanvas:
		return "Canvas"
	case FocusSidebar:
		return "Sidebar"
	case FocusTerminal:
		return "Terminal"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
)

// TUIConfig carries everything the model needs from the bootstrap.
type TUIConfig struct {
	Machine     *session.Machine
	Desktop     *desktop.Desktop
	DebugMode   bool
	LightMode   bool
	NarrowWidth int
	LogChannel  <-chan logging.LogEntry
	Version     string
}

// Constants for UI
const (
	MaxActivityLogLines = 1000
	MaxCommandHistory   = 100
	ProductName         = "DxDesigner Pro 2025"
	DocumentName        = "Bullock_Portfolio_Main.sch"
)

// Model is the complete TUI state. Interaction state lives in State and only
// changes through Machine.Reduce; the rest is presentation.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	QuitApp        bool
	CurrentAppMode AppMode
	LastAppMode    AppMode
	Focus          Focus
	DebugMode      bool
	Version        string
	NarrowWidth    int
	InitialLight   bool

	Machine   *session.Machine
	State     session.State
	Schedules *schedule.Registry
	Desktop   *desktop.Desktop

	// Terminal input line and recall
	CommandInput   textinput.Model
	CommandHistory []string
	HistoryIndex   int

	// Sidebar fuzzy filter
	Filtering    bool
	FilterInput  textinput.Model
	FilterCursor int

	TerminalViewport viewport.Model
	TerminalContent  string
	DocViewport      viewport.Model
	DocEntityID      string
	DocCache         *cache.Cache

	// Debug activity log, shown in the log overlay
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	LogViewportLastWidth int

	// Last pointer position in cells
	MouseX int
	MouseY int

	Spinner              spinner.Model
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	LogChannel <-chan logging.LogEntry
}

// Catalog is a shorthand for the machine's catalog.
func (m *Model) Catalog() *catalog.Catalog {
	return m.Machine.Catalog()
}

// Dispatch applies one session event and returns the effects it requested.
func (m *Model) Dispatch(ev session.Event) []effect.Effect {
	next, effects := m.Machine.Reduce(m.State, ev)
	m.State = next
	return effects
}

// InDocumentation reports whether the documentation overlay is up.
func (m *Model) InDocumentation() bool {
	return m.State.ViewMode == session.ViewDocumentation
}
