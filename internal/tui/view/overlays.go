package view

import (
	"strings"

	"dxfolio/internal/tui/components"
	"dxfolio/internal/tui/design"
	"dxfolio/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const logOverlayTitle = "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)"

func renderHelpOverlay(m *model.Model) string {
	titleView := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")
	h := m.Help
	h.ShowAll = true
	container := design.CenteredOverlayContainerStyle.Render(titleView + "\n" + h.View(m.Keys))
	return components.CenterContent(m.Width, m.Height, container)
}

// LogOverlaySize returns the viewport size inside the log overlay.
func LogOverlaySize(m *model.Model) (int, int) {
	titleHeight := lipgloss.Height(design.LogPanelTitleStyle.Render(logOverlayTitle))
	w := int(float64(m.Width)*0.8) - design.LogOverlayStyle.GetHorizontalFrameSize()
	h := int(float64(m.Height)*0.7) - design.LogOverlayStyle.GetVerticalFrameSize() - titleHeight
	return max(w, 0), max(h, 0)
}

func renderLogOverlay(m *model.Model) string {
	title := design.LogPanelTitleStyle.Render(logOverlayTitle)
	content := components.JoinVertical(title, m.LogViewport.View())
	w, h := LogOverlaySize(m)
	overlay := design.LogOverlayStyle.
		Width(w + design.LogOverlayStyle.GetHorizontalPadding()).
		Height(h + lipgloss.Height(title)).
		Render(content)

	f := ComputeFrame(m)
	canvas := lipgloss.Place(m.Width, m.Height-1, lipgloss.Center, lipgloss.Center, overlay)
	return lipgloss.JoinVertical(lipgloss.Left, canvas, renderStatusBar(m, f))
}

// PrepareLogContent applies color styles based on log level keywords.
func PrepareLogContent(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = styleLogLine(l)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
