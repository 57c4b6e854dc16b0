package controller

import (
	"strings"

	"dxfolio/internal/command"
	"dxfolio/internal/session"
	"dxfolio/internal/tui/model"
	"dxfolio/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// handleTerminalInput handles keys while the terminal prompt has focus. Only
// the arrow keys recall history so j and k can be typed.
func handleTerminalInput(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		return setFocus(m, model.FocusCanvas)

	case "enter":
		line := m.CommandInput.Value()
		model.PushHistory(m, strings.TrimSpace(line))
		m.CommandInput.Reset()
		LogDebug(m, keySubsystem, "submit %q", line)
		cmd := dispatch(m, session.SubmitCommand{Line: line})
		if m.InDocumentation() {
			m, _ = setFocus(m, model.FocusCanvas)
		}
		return m, cmd

	case "up", "down":
		delta := -1
		if keyMsg.String() == "down" {
			delta = 1
		}
		if line, ok := model.RecallHistory(m, delta); ok {
			m.CommandInput.SetValue(line)
			m.CommandInput.CursorEnd()
		}
		return m, nil

	case "tab":
		if completed, ok := completeLine(m.CommandInput.Value(), m.Catalog().RefDesList()); ok {
			m.CommandInput.SetValue(completed)
			m.CommandInput.CursorEnd()
		}
		return m, nil

	case "ctrl+l":
		return m, dispatch(m, session.SubmitCommand{Line: "clear"})
	}

	var cmd tea.Cmd
	m.CommandInput, cmd = m.CommandInput.Update(keyMsg)
	return m, cmd
}

// completeLine completes the designator argument of an open command when
// exactly one designator starts with what was typed.
func completeLine(line string, refs []string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 || command.Verb(line) != "open" || strings.HasSuffix(line, " ") {
		return line, false
	}
	prefix := strings.ToUpper(fields[1])
	match := ""
	for _, ref := range refs {
		if strings.HasPrefix(strings.ToUpper(ref), prefix) {
			if match != "" {
				return line, false
			}
			match = ref
		}
	}
	if match == "" {
		return line, false
	}
	return fields[0] + " " + match, true
}

// handleFilterInput handles keys while the explorer filter is being typed.
func handleFilterInput(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		stopFilter(m)
		return m, nil

	case "enter":
		rows := view.SidebarRows(m)
		var cmd tea.Cmd
		if i := m.FilterCursor; i >= 0 && i < len(rows) && rows[i].Node.ProjectID != "" {
			cmd = dispatch(m, session.SelectEntity{ID: rows[i].Node.ProjectID})
		}
		stopFilter(m)
		return m, cmd

	case "up", "ctrl+p":
		m.FilterCursor = max(m.FilterCursor-1, 0)
		return m, nil

	case "down", "ctrl+n":
		m.FilterCursor = min(m.FilterCursor+1, max(len(view.SidebarRows(m))-1, 0))
		return m, nil
	}

	var cmd tea.Cmd
	m.FilterInput, cmd = m.FilterInput.Update(keyMsg)
	m.FilterCursor = 0
	return m, cmd
}

func stopFilter(m *model.Model) {
	m.Filtering = false
	m.FilterCursor = 0
	m.FilterInput.Reset()
	m.FilterInput.Blur()
}
