package controller

import (
	"strings"

	"dxfolio/internal/session"
	"dxfolio/internal/tui/model"
	"dxfolio/internal/tui/view"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Arrow keys pan the canvas by this many cells.
const (
	panStepCols = 8
	panStepRows = 4
)

// handleKeyMsg routes a key press. Overlays and focused inputs see the key
// before the global shortcuts.
func handleKeyMsg(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if keyMsg.String() == "ctrl+c" {
		return quit(m)
	}
	LogDebug(m, keySubsystem, "key %q mode=%s focus=%s", keyMsg.String(), m.CurrentAppMode, m.Focus)

	switch m.CurrentAppMode {
	case model.ModeInitializing, model.ModeQuitting:
		return m, nil
	case model.ModeLogOverlay:
		return handleLogOverlayKey(m, keyMsg)
	case model.ModeHelpOverlay:
		if key.Matches(keyMsg, m.Keys.Esc) || key.Matches(keyMsg, m.Keys.Help) {
			m.CurrentAppMode = m.LastAppMode
			return m, nil
		}
		if key.Matches(keyMsg, m.Keys.Quit) {
			return quit(m)
		}
		return m, nil
	}

	if m.Focus == model.FocusTerminal && !m.InDocumentation() {
		return handleTerminalInput(m, keyMsg)
	}
	if m.Filtering && !m.InDocumentation() {
		return handleFilterInput(m, keyMsg)
	}
	if m.InDocumentation() {
		if handled, cmd := handleDocumentationKey(m, keyMsg); handled {
			return m, cmd
		}
	}
	return handleKeyMsgGlobal(m, keyMsg)
}

func handleLogOverlayKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Esc):
		m.CurrentAppMode = m.LastAppMode
		return m, nil
	case key.Matches(keyMsg, m.Keys.CopyLogs):
		return m, copyCmd(m, "copy logs", strings.Join(m.ActivityLog, "\n"), "Logs copied to clipboard")
	default:
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(keyMsg)
		return m, cmd
	}
}

// handleDocumentationKey handles the keys that mean something different while
// the documentation is up. The rest fall through to the global shortcuts.
func handleDocumentationKey(m *model.Model, keyMsg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Esc):
		return true, dispatch(m, session.CloseDetail{})
	case key.Matches(keyMsg, m.Keys.NextEntity), key.Matches(keyMsg, m.Keys.Right):
		return true, dispatch(m, session.NextEntity{})
	case key.Matches(keyMsg, m.Keys.PrevEntity), key.Matches(keyMsg, m.Keys.Left):
		return true, dispatch(m, session.PrevEntity{})
	case key.Matches(keyMsg, m.Keys.Up), key.Matches(keyMsg, m.Keys.Down),
		keyMsg.String() == "pgup", keyMsg.String() == "pgdown",
		keyMsg.String() == "home", keyMsg.String() == "end", keyMsg.String() == " ":
		var cmd tea.Cmd
		m.DocViewport, cmd = m.DocViewport.Update(keyMsg)
		return true, cmd
	}
	return false, nil
}

// handleKeyMsgGlobal processes global key presses when no input has focus.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	for i, b := range m.Keys.Menus {
		if key.Matches(keyMsg, b) {
			return m, dispatch(m, session.DispatchAction{Name: model.MenuNames[i]})
		}
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)

	case key.Matches(keyMsg, m.Keys.Help):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeLogOverlay
		m.ActivityLogDirty = true
		return m, nil

	case key.Matches(keyMsg, m.Keys.CopyLogs):
		return m, copyCmd(m, "copy terminal", strings.Join(m.State.Terminal.Lines, "\n"), "Terminal copied to clipboard")

	case key.Matches(keyMsg, m.Keys.Command):
		return focusTerminal(m)

	case key.Matches(keyMsg, m.Keys.Filter):
		return startFilter(m)

	case key.Matches(keyMsg, m.Keys.Tab):
		return setFocus(m, nextFocus(focusOrder(m), m.Focus, 1))

	case key.Matches(keyMsg, m.Keys.Esc):
		m.FilterInput.Reset()
		m.Focus = model.FocusCanvas
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleSidebar):
		cmd := dispatch(m, session.ToggleSidebar{})
		if !m.State.SidebarOpen && m.Focus == model.FocusSidebar {
			m.Focus = model.FocusCanvas
		}
		return m, cmd

	case key.Matches(keyMsg, m.Keys.ToggleTerminal):
		return m, dispatch(m, session.ToggleTerminal{})

	case key.Matches(keyMsg, m.Keys.SelectTool):
		return m, dispatch(m, session.SetTool{Tool: session.ToolSelect})

	case key.Matches(keyMsg, m.Keys.PanTool):
		return m, dispatch(m, session.SetTool{Tool: session.ToolPan})

	case key.Matches(keyMsg, m.Keys.ZoomIn):
		return m, dispatch(m, session.ZoomIn{})

	case key.Matches(keyMsg, m.Keys.ZoomOut):
		return m, dispatch(m, session.ZoomOut{})

	case key.Matches(keyMsg, m.Keys.Fit):
		return m, fitView(m)

	case key.Matches(keyMsg, m.Keys.NextEntity):
		return m, dispatch(m, session.NextEntity{})

	case key.Matches(keyMsg, m.Keys.PrevEntity):
		return m, dispatch(m, session.PrevEntity{})

	case key.Matches(keyMsg, m.Keys.SaveResume):
		return m, dispatch(m, session.DispatchAction{Name: "Save Resume"})
	case key.Matches(keyMsg, m.Keys.Print):
		return m, dispatch(m, session.DispatchAction{Name: "Print"})
	case key.Matches(keyMsg, m.Keys.Undo):
		return m, dispatch(m, session.DispatchAction{Name: "Undo"})
	case key.Matches(keyMsg, m.Keys.Redo):
		return m, dispatch(m, session.DispatchAction{Name: "Redo"})
	case key.Matches(keyMsg, m.Keys.Settings):
		return m, dispatch(m, session.DispatchAction{Name: "Settings"})
	case key.Matches(keyMsg, m.Keys.BOM):
		return m, dispatch(m, session.DispatchAction{Name: "BOM"})
	}

	if m.Focus == model.FocusSidebar {
		return handleSidebarKey(m, keyMsg)
	}
	return handleCanvasKey(m, keyMsg)
}

func handleCanvasKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	var dx, dy float64
	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		dy = -panStepRows * view.CellH
	case key.Matches(keyMsg, m.Keys.Down):
		dy = panStepRows * view.CellH
	case key.Matches(keyMsg, m.Keys.Left):
		dx = -panStepCols * view.CellW
	case key.Matches(keyMsg, m.Keys.Right):
		dx = panStepCols * view.CellW
	default:
		return m, nil
	}
	return m, dispatch(m, session.Wheel{DeltaX: dx, DeltaY: dy})
}

func handleSidebarKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		return m, dispatch(m, session.MoveTreeCursor{Delta: -1})
	case key.Matches(keyMsg, m.Keys.Down):
		return m, dispatch(m, session.MoveTreeCursor{Delta: 1})
	case key.Matches(keyMsg, m.Keys.Enter):
		return m, dispatch(m, session.ActivateTreeRow{Index: m.State.TreeCursor})
	case key.Matches(keyMsg, m.Keys.Left), key.Matches(keyMsg, m.Keys.Right):
		rows := m.State.VisibleRows(m.Catalog())
		if i := m.State.TreeCursor; i >= 0 && i < len(rows) && rows[i].Node.IsFolder() {
			expand := key.Matches(keyMsg, m.Keys.Right)
			if m.State.FolderExpanded(rows[i].Node.ID) != expand {
				return m, dispatch(m, session.ToggleFolder{ID: rows[i].Node.ID})
			}
		}
	}
	return m, nil
}

// fitView fits the sheet to the canvas area as currently laid out.
func fitView(m *model.Model) tea.Cmd {
	w, h := view.ComputeFrame(m).CanvasPixelSize()
	return dispatch(m, session.FitView{AvailW: w, AvailH: h})
}

func focusTerminal(m *model.Model) (*model.Model, tea.Cmd) {
	var cmd tea.Cmd
	if !m.State.TerminalOpen() {
		cmd = dispatch(m, session.ToggleTerminal{})
	}
	m, focusCmd := setFocus(m, model.FocusTerminal)
	return m, tea.Batch(cmd, focusCmd)
}

func startFilter(m *model.Model) (*model.Model, tea.Cmd) {
	var cmd tea.Cmd
	if !m.State.SidebarOpen {
		cmd = dispatch(m, session.ToggleSidebar{})
	}
	m.Filtering = true
	m.FilterCursor = 0
	m.FilterInput.Reset()
	m.CommandInput.Blur()
	m.Focus = model.FocusSidebar
	return m, tea.Batch(cmd, m.FilterInput.Focus(), textinput.Blink)
}

// focusOrder lists the panes Tab cycles through, skipping closed ones.
func focusOrder(m *model.Model) []model.Focus {
	order := []model.Focus{model.FocusCanvas}
	if m.State.SidebarOpen {
		order = append(order, model.FocusSidebar)
	}
	if m.State.TerminalOpen() {
		order = append(order, model.FocusTerminal)
	}
	return order
}

func setFocus(m *model.Model, f model.Focus) (*model.Model, tea.Cmd) {
	m.Focus = f
	if f == model.FocusTerminal {
		return m, tea.Batch(m.CommandInput.Focus(), textinput.Blink)
	}
	m.CommandInput.Blur()
	return m, nil
}

// nextFocus returns the next element from order based on the current element
// and a delta (+1 for forward, -1 for backward). It wraps around at either
// end; when current is not in order it picks the first or last element.
func nextFocus(order []model.Focus, current model.Focus, delta int) model.Focus {
	if len(order) == 0 {
		return current
	}
	if delta > 0 {
		delta = 1
	} else if delta < 0 {
		delta = -1
	}

	idx := -1
	for i, v := range order {
		if v == current {
			idx = i
			break
		}
	}
	if idx == -1 {
		if delta >= 0 {
			return order[0]
		}
		return order[len(order)-1]
	}

	n := len(order)
	return order[(idx+delta+n)%n]
}
