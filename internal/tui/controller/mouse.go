package controller

import (
	"dxfolio/internal/session"
	"dxfolio/internal/tui/model"
	"dxfolio/internal/tui/view"
	"dxfolio/internal/viewport"

	tea "github.com/charmbracelet/bubbletea"
)

// One wheel notch scrolls the canvas by this many screen units.
const wheelStep = 100

// handleMouseMsg routes mouse input by what lies under the pointer.
func handleMouseMsg(m *model.Model, msg tea.MouseMsg) (*model.Model, tea.Cmd) {
	m.MouseX, m.MouseY = msg.X, msg.Y

	switch m.CurrentAppMode {
	case model.ModeLogOverlay:
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(msg)
		return m, cmd
	case model.ModeMain:
	default:
		return m, nil
	}

	if m.InDocumentation() {
		return handleDocumentationMouse(m, msg)
	}

	f := view.ComputeFrame(m)
	if tea.MouseEvent(msg).IsWheel() {
		return handleWheel(m, f, msg)
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return handleLeftPress(m, f, msg.X, msg.Y)
	case tea.MouseActionMotion:
		if m.State.Viewport.Dragging() {
			return m, dispatch(m, session.PointerMove{Pos: canvasPoint(f, msg.X, msg.Y)})
		}
	case tea.MouseActionRelease:
		if m.State.Viewport.Dragging() {
			return m, dispatch(m, session.PointerUp{})
		}
	}
	return m, nil
}

// canvasPoint maps a screen cell to canvas pixels. The pointer may be outside
// the canvas while a drag is in progress.
func canvasPoint(f view.Frame, x, y int) viewport.Point {
	return view.CellPoint(x-f.Canvas.X, y-f.Canvas.Y)
}

func handleWheel(m *model.Model, f view.Frame, msg tea.MouseMsg) (*model.Model, tea.Cmd) {
	switch {
	case f.Canvas.Contains(msg.X, msg.Y):
		var dx, dy float64
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			dy = -wheelStep
		case tea.MouseButtonWheelDown:
			dy = wheelStep
		case tea.MouseButtonWheelLeft:
			dx = -wheelStep
		case tea.MouseButtonWheelRight:
			dx = wheelStep
		}
		return m, dispatch(m, session.Wheel{DeltaX: dx, DeltaY: dy, Modifier: msg.Ctrl})

	case f.Terminal.Contains(msg.X, msg.Y) && m.State.TerminalOpen():
		var cmd tea.Cmd
		m.TerminalViewport, cmd = m.TerminalViewport.Update(msg)
		return m, cmd

	case f.Sidebar.Contains(msg.X, msg.Y):
		delta := 1
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -1
		}
		if view.Filtered(m) {
			m.FilterCursor = max(min(m.FilterCursor+delta, len(view.SidebarRows(m))-1), 0)
			return m, nil
		}
		return m, dispatch(m, session.MoveTreeCursor{Delta: delta})
	}
	return m, nil
}

func handleLeftPress(m *model.Model, f view.Frame, x, y int) (*model.Model, tea.Cmd) {
	if id, ok := view.MenuBar(m, f).HitTest(x, y); ok {
		LogDebug(m, mouseSubsystem, "menu %s", id)
		return m, dispatch(m, session.DispatchAction{Name: id})
	}
	if id, ok := view.Toolbar(m, f).HitTest(x, y); ok {
		LogDebug(m, mouseSubsystem, "toolbar %s", id)
		return m, toolbarButton(m, id)
	}

	if view.TerminalToggleHit(f, x, y) {
		cmd := dispatch(m, session.ToggleTerminal{})
		if !m.State.TerminalOpen() && m.Focus == model.FocusTerminal {
			m, _ = setFocus(m, model.FocusCanvas)
		}
		return m, cmd
	}
	if f.Terminal.Contains(x, y) {
		return focusTerminal(m)
	}

	if f.Sidebar.Contains(x, y) {
		m, _ = setFocus(m, model.FocusSidebar)
		index, ok := view.SidebarRowAt(m, f, x, y)
		if !ok {
			return m, nil
		}
		if view.Filtered(m) {
			rows := view.SidebarRows(m)
			m.FilterCursor = index
			if id := rows[index].Node.ProjectID; id != "" {
				cmd := dispatch(m, session.SelectEntity{ID: id})
				stopFilter(m)
				return m, cmd
			}
			return m, nil
		}
		return m, dispatch(m, session.ActivateTreeRow{Index: index})
	}

	if f.Canvas.Contains(x, y) {
		m, _ = setFocus(m, model.FocusCanvas)
		col, row := x-f.Canvas.X, y-f.Canvas.Y
		id, onPart := view.PartAt(m.Catalog(), m.State.Viewport, col, row)
		if onPart && m.State.Tool == session.ToolSelect {
			LogDebug(m, mouseSubsystem, "select %s", id)
			return m, dispatch(m, session.SelectEntity{ID: id})
		}
		return m, dispatch(m, session.PointerDown{Pos: view.CellPoint(col, row), OnBackground: !onPart})
	}
	return m, nil
}

// toolbarButton runs a toolbar click. Canvas buttons drive the viewport, the
// rest are actions.
func toolbarButton(m *model.Model, id string) tea.Cmd {
	switch id {
	case view.ButtonZoomIn:
		return dispatch(m, session.ZoomIn{})
	case view.ButtonZoomOut:
		return dispatch(m, session.ZoomOut{})
	case view.ButtonFit:
		return fitView(m)
	case view.ButtonSelect:
		return dispatch(m, session.SetTool{Tool: session.ToolSelect})
	case view.ButtonPan:
		return dispatch(m, session.SetTool{Tool: session.ToolPan})
	default:
		return dispatch(m, session.DispatchAction{Name: id})
	}
}

func handleDocumentationMouse(m *model.Model, msg tea.MouseMsg) (*model.Model, tea.Cmd) {
	if tea.MouseEvent(msg).IsWheel() {
		var cmd tea.Cmd
		m.DocViewport, cmd = m.DocViewport.Update(msg)
		return m, cmd
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	id, ok := view.DocButtons(m).HitTest(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	switch id {
	case view.DocNext:
		return m, dispatch(m, session.NextEntity{})
	case view.DocBack, view.DocClose:
		return m, dispatch(m, session.CloseDetail{})
	}
	return m, nil
}
