package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Design System Constants
const (
	// Spacing units in cells
	SpaceNone = 0
	SpaceXS   = 1
	SpaceSM   = 2
	SpaceMD   = 3

	// Component dimensions
	MinPanelHeight = 3
	MinPanelWidth  = 12

	SidebarWidth           = 30
	TerminalExpandedHeight = 10
	TerminalCollapsedRows  = 1
)

// Color Palette - CAD workstation colors with light/dark variants
var (
	// Accent is the highlight used for titles, the sheet overlay and focus.
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#0369A1",
		Dark:  "#4FC3F7",
	}
	ColorSelection = lipgloss.AdaptiveColor{
		Light: "#B45309",
		Dark:  "#FFD700",
	}

	// State Colors
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}

	// Sheet colors
	ColorCanvas = lipgloss.AdaptiveColor{
		Light: "#F5F5F0",
		Dark:  "#1E1E1E",
	}
	ColorGrid = lipgloss.AdaptiveColor{
		Light: "#D4D4CC",
		Dark:  "#2A2A2A",
	}
	ColorWire = lipgloss.AdaptiveColor{
		Light: "#15803D",
		Dark:  "#4ADE80",
	}
	ColorPart = lipgloss.AdaptiveColor{
		Light: "#1F2937",
		Dark:  "#E5E7EB",
	}
	ColorRegion = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#525252",
	}

	// Chrome colors
	ColorUI = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#252526",
	}
	ColorUIDark = lipgloss.AdaptiveColor{
		Light: "#D1D5DB",
		Dark:  "#181818",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#3C3C3C",
	}
	ColorBorderFocus = ColorAccent

	// Text Colors
	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#D4D4D4",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#4B5563",
		Dark:  "#9CA3AF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}
	ColorHighlight = lipgloss.AdaptiveColor{
		Light: "#DBEAFE",
		Dark:  "#094771",
	}
	ColorDocBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#0A0A0A",
	}
)

// Base Styles
var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	TextAccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	TextSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	TextErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	TextWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder)

	BorderFocusStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorBorderFocus)
)

// Component Styles
var (
	// PanelStyle frames the sidebar and terminal. The frame costs one border
	// cell and one padding cell on each side horizontally and one border row
	// top and bottom.
	PanelStyle = lipgloss.NewStyle().
			Inherit(BorderStyle).
			Background(ColorUI).
			Padding(0, SpaceXS).
			Margin(0)

	PanelFocusedStyle = PanelStyle.
				Inherit(BorderFocusStyle).
				BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Background(ColorUIDark).
			Foreground(ColorText).
			Padding(0, SpaceXS)

	MenuBarStyle = lipgloss.NewStyle().
			Background(ColorUI).
			Foreground(ColorText)

	MenuItemStyle = lipgloss.NewStyle().
			Padding(0, SpaceXS)

	ToolbarStyle = lipgloss.NewStyle().
			Background(ColorUIDark).
			Foreground(ColorTextSecondary)

	ToolButtonStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ToolButtonActiveStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true).
				Reverse(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Background(ColorUIDark).
			Padding(0, SpaceXS).
			Height(1)

	StatusBarErrorStyle = StatusBarStyle.
				Foreground(ColorError)

	StatusBarSuccessStyle = StatusBarStyle.
				Foreground(ColorSuccess)

	TreeRowStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TreeFolderStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Bold(true)

	TreeCursorStyle = lipgloss.NewStyle().
			Background(ColorHighlight).
			Foreground(ColorText)

	TreeSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorSelection)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	TerminalErrorLineStyle = lipgloss.NewStyle().
				Foreground(ColorError)

	TerminalEchoStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)
)

// Sheet styles
var (
	CanvasStyle = lipgloss.NewStyle().
			Background(ColorCanvas)

	GridStyle = lipgloss.NewStyle().
			Foreground(ColorGrid)

	WireStyle = lipgloss.NewStyle().
			Foreground(ColorWire)

	PartStyle = lipgloss.NewStyle().
			Foreground(ColorPart)

	PartSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorSelection).
				Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	RegionStyle = lipgloss.NewStyle().
			Foreground(ColorRegion)

	JunctionStyle = lipgloss.NewStyle().
			Foreground(ColorWire).
			Bold(true)

	SheetOverlayStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Background(ColorUI)
)

// Documentation overlay styles
var (
	DocStyle = lipgloss.NewStyle().
			Background(ColorDocBackground).
			Foreground(ColorText)

	DocKickerStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	DocTitleStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	DocSectionStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(ColorAccent).
			PaddingLeft(SpaceXS)

	DocSubheadStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Bold(true)

	DocTagStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Border(lipgloss.NormalBorder(), false, true, false, true).
			BorderForeground(ColorBorder)

	DocOutcomeStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Italic(true).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(ColorSuccess).
			PaddingLeft(SpaceXS)
)

// Overlay styles
var (
	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Align(lipgloss.Center).
			Foreground(ColorText)

	CenteredOverlayContainerStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(ColorBorder).
					Background(ColorUI).
					Foreground(ColorText).
					Padding(1, 2)

	LogOverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Background(ColorUI).
			Foreground(ColorText).
			Padding(0, 1)

	LogPanelTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Foreground(ColorAccent)
)

// Log level styles
var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
)

// Layout Helpers
func CenterHorizontal(width int, content string) string {
	contentWidth := lipgloss.Width(content)
	if contentWidth >= width {
		return content
	}
	padding := (width - contentWidth) / 2
	return lipgloss.NewStyle().
		PaddingLeft(padding).
		Width(width).
		Render(content)
}

func CenterVertical(height int, content string) string {
	contentHeight := lipgloss.Height(content)
	if contentHeight >= height {
		return content
	}
	padding := (height - contentHeight) / 2
	return lipgloss.NewStyle().
		PaddingTop(padding).
		Height(height).
		Render(content)
}

// Initialize sets up the design system. Colors are adaptive, so switching
// the background flag re-themes every style on the next render.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// IsDark reports the current theme.
func IsDark() bool {
	return lipgloss.HasDarkBackground()
}
