package view

import (
	"strings"

	"dxfolio/internal/terminal"
	"dxfolio/internal/tui/components"
	"dxfolio/internal/tui/design"
	"dxfolio/internal/tui/model"
	"dxfolio/internal/tui/utils"
)

func terminalPanel(m *model.Model, f Frame) *components.Panel {
	return components.NewPanel("TERMINAL").
		WithHint("t: collapse").
		WithDimensions(f.Terminal.W, f.Terminal.H).
		SetFocused(m.Focus == model.FocusTerminal)
}

// TerminalViewportSize is the scrollback area inside the expanded panel. The
// last inner row holds the prompt.
func TerminalViewportSize(m *model.Model, f Frame) (int, int) {
	w, h := terminalPanel(m, f).InnerSize()
	return w, max(h-1, 0)
}

// PrepareTerminalContent styles the terminal log for the scrollback viewport.
func PrepareTerminalContent(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = styleTerminalLine(l)
	}
	return strings.Join(out, "\n")
}

func styleTerminalLine(l string) string {
	switch {
	case strings.HasPrefix(l, "user@"):
		return design.TerminalEchoStyle.Render(l)
	case strings.HasPrefix(l, "[ERROR]"), strings.HasPrefix(l, "Error"):
		return design.TerminalErrorLineStyle.Render(l)
	case strings.HasPrefix(l, "[DEBUG]"), strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.TextStyle.Render(l)
	}
}

// TerminalToggleHit reports whether (x, y) is on the terminal's title row,
// which toggles the panel when clicked.
func TerminalToggleHit(f Frame, x, y int) bool {
	return f.Terminal.Contains(x, y) && (y == f.Terminal.Y || f.Terminal.H == 1 || y == f.Terminal.Y+1)
}

func renderTerminal(m *model.Model, f Frame) string {
	if f.Terminal.Empty() {
		return ""
	}
	host := m.Machine.Env().Host
	if !m.State.TerminalOpen() || f.Terminal.H < design.MinPanelHeight {
		last := ""
		if n := len(m.State.Terminal.Lines); n > 0 {
			last = m.State.Terminal.Lines[n-1]
		}
		line := "▸ TERMINAL  " + design.DimStyle.Render("(t to expand)  ") + last
		return design.StatusBarStyle.
			Foreground(design.ColorText).
			Width(f.Terminal.W).
			MaxWidth(f.Terminal.W).
			Render(utils.TruncateANSI(line, f.Terminal.W-2))
	}

	prompt := design.PromptStyle.Render(terminal.Prompt(host, ""))
	input := m.CommandInput.View()
	if m.Focus != model.FocusTerminal {
		input = design.DimStyle.Render("press : to type")
	}
	content := m.TerminalViewport.View() + "\n" + prompt + input
	return terminalPanel(m, f).WithContent(content).Render()
}
