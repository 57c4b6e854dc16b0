package view

import (
	"strings"

	"dxfolio/internal/tui/components"
	"dxfolio/internal/tui/design"
	"dxfolio/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.TextSecondaryStyle.Render("Closing " + model.DocumentName + "...")
	case model.ModeInitializing:
		if m.Width == 0 || m.Height == 0 {
			return design.TextSecondaryStyle.Render("Initializing... (waiting for window size)")
		}
		return design.TextSecondaryStyle.Render("Initializing...")
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	}

	if m.InDocumentation() {
		if doc := renderDocumentation(m); doc != "" {
			return doc
		}
	}
	return renderWorkspace(m)
}

func renderWorkspace(m *model.Model) string {
	f := ComputeFrame(m)

	canvas := RenderCanvas(m.Catalog(), m.State, f.Canvas.W, f.Canvas.H)
	middle := canvas
	if !f.Sidebar.Empty() {
		middle = components.JoinHorizontal(0, renderSidebar(m, f), canvas)
	}

	parts := []string{
		renderHeader(m, f),
		MenuBar(m, f).Render(),
		Toolbar(m, f).Render(),
	}
	if f.Canvas.H > 0 {
		parts = append(parts, middle)
	}
	if t := renderTerminal(m, f); t != "" {
		parts = append(parts, t)
	}
	parts = append(parts, renderStatusBar(m, f))

	return lipgloss.NewStyle().
		MaxWidth(m.Width).
		MaxHeight(m.Height).
		Render(strings.Join(parts, "\n"))
}
