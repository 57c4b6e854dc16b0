package session

import (
	"fmt"

	"dxfolio/internal/action"
	"dxfolio/internal/catalog"
	"dxfolio/internal/command"
	"dxfolio/internal/effect"
	"dxfolio/internal/terminal"
	"dxfolio/internal/viewport"
)

// Env is the read-only context transitions run against.
type Env struct {
	Catalog         *catalog.Catalog
	Host            string
	SiteURL         string
	ContactEmail    string
	ResumePath      string
	SimulationSteps []effect.Step
}

// Machine applies events to states.
type Machine struct {
	env Env
}

// NewMachine returns a machine bound to env. The catalog must be validated.
func NewMachine(env Env) *Machine {
	return &Machine{env: env}
}

// Catalog returns the catalog the machine runs against.
func (m *Machine) Catalog() *catalog.Catalog {
	return m.env.Catalog
}

// Env returns the machine's environment.
func (m *Machine) Env() Env {
	return m.env
}

// Initial returns the first state of a session. Narrow screens start with the
// sidebar closed and a smaller scale.
func (m *Machine) Initial(narrow bool, light bool) State {
	scale := WideScale
	if narrow {
		scale = NarrowScale
	}
	vp := viewport.New(scale).PanBy(viewport.FitMargin, viewport.FitMargin)
	return State{
		ViewMode:          ViewSchematic,
		SidebarOpen:       !narrow,
		SavedSidebarOpen:  !narrow,
		SavedTerminalOpen: true,
		Tool:              ToolSelect,
		Viewport:          vp,
		Terminal:          terminal.New(),
		LightMode:         light,
	}
}

// Reduce applies ev to s. It returns the next state and the effects the
// caller must execute. s is never modified.
func (m *Machine) Reduce(s State, ev Event) (State, []effect.Effect) {
	switch ev := ev.(type) {
	case SelectEntity:
		return m.selectEntity(s, ev.ID), nil
	case CloseDetail:
		return closeDetail(s), nil
	case NextEntity:
		return m.step(s, 1), nil
	case PrevEntity:
		return m.step(s, -1), nil
	case ToggleSidebar:
		s.SidebarOpen = !s.SidebarOpen
		return s, nil
	case ToggleTerminal:
		s.Terminal = s.Terminal.ToggleExpand()
		return s, nil
	case SetTool:
		s.Tool = ev.Tool
		return s, nil
	case ZoomIn:
		s.Viewport = s.Viewport.ZoomIn()
		return s, nil
	case ZoomOut:
		s.Viewport = s.Viewport.ZoomOut()
		return s, nil
	case Wheel:
		s.Viewport = s.Viewport.Wheel(ev.DeltaX, ev.DeltaY, ev.Modifier)
		return s, nil
	case PointerDown:
		s.Viewport = s.Viewport.BeginDrag(ev.Pos, s.Tool == ToolPan, ev.OnBackground)
		return s, nil
	case PointerMove:
		s.Viewport = s.Viewport.ContinueDrag(ev.Pos)
		return s, nil
	case PointerUp:
		s.Viewport = s.Viewport.EndDrag()
		return s, nil
	case FitView:
		w, h := m.env.Catalog.Extent()
		s.Viewport = s.Viewport.Fit(w, h, ev.AvailW, ev.AvailH)
		return s, nil
	case SubmitCommand:
		return m.submit(s, ev.Line), nil
	case DispatchAction:
		return m.dispatch(s, ev.Name)
	case AppendLog:
		s.Terminal = s.Terminal.Append(ev.Lines...)
		return s, nil
	case ToggleFolder:
		if n, ok := m.env.Catalog.FindNode(ev.ID); !ok || !n.IsFolder() {
			return s, nil
		}
		return toggleFolder(s, ev.ID), nil
	case MoveTreeCursor:
		return m.moveCursor(s, ev.Delta), nil
	case ActivateTreeRow:
		return m.activateRow(s, ev.Index), nil
	default:
		return s, nil
	}
}

func (m *Machine) selectEntity(s State, id string) State {
	if _, ok := m.env.Catalog.ByID(id); !ok {
		return s
	}
	if s.ViewMode == ViewSchematic {
		s.SavedSidebarOpen = s.SidebarOpen
		s.SavedTerminalOpen = s.Terminal.Expanded
		s.ViewMode = ViewDocumentation
	}
	// Side panels stay closed for every selection in focus mode.
	s.SidebarOpen = false
	if s.Terminal.Expanded {
		s.Terminal = s.Terminal.ToggleExpand()
	}
	s.SelectedID = id
	return s
}

func closeDetail(s State) State {
	if s.ViewMode != ViewDocumentation {
		return s
	}
	s.ViewMode = ViewSchematic
	s.SidebarOpen = s.SavedSidebarOpen
	if s.Terminal.Expanded != s.SavedTerminalOpen {
		s.Terminal = s.Terminal.ToggleExpand()
	}
	return s
}

func (m *Machine) step(s State, delta int) State {
	if s.SelectedID == "" {
		return s
	}
	cat := m.env.Catalog
	i := cat.IndexOf(s.SelectedID)
	if i < 0 {
		return s
	}
	n := cat.Len()
	next := ((i+delta)%n + n) % n
	return m.selectEntity(s, cat.Entities[next].ID)
}

func (m *Machine) submit(s State, line string) State {
	panel, res := s.Terminal.Submit(line, m.env.Catalog, m.env.Host)
	s.Terminal = panel
	if res.Action.Kind == command.ActionOpen {
		s = m.selectEntity(s, res.Action.EntityID)
	}
	return s
}

func (m *Machine) dispatch(s State, name string) (State, []effect.Effect) {
	out := action.Dispatch(action.Context{
		Name:            name,
		LightMode:       s.LightMode,
		ComponentCount:  m.env.Catalog.ComponentCount(),
		SiteURL:         m.env.SiteURL,
		ContactEmail:    m.env.ContactEmail,
		ResumePath:      m.env.ResumePath,
		ResumeFile:      m.env.Catalog.Profile.ResumeFile,
		SimulationSteps: m.env.SimulationSteps,
	})
	if out.ToggleTheme {
		s.LightMode = !s.LightMode
	}
	s.Terminal = s.Terminal.Append(out.Lines...)
	return s, out.Effects
}

func toggleFolder(s State, id string) State {
	next := make(map[string]bool, len(s.Collapsed)+1)
	for k, v := range s.Collapsed {
		if v {
			next[k] = true
		}
	}
	if next[id] {
		delete(next, id)
	} else {
		next[id] = true
	}
	s.Collapsed = next
	return s
}

func (m *Machine) moveCursor(s State, delta int) State {
	rows := s.VisibleRows(m.env.Catalog)
	if len(rows) == 0 {
		s.TreeCursor = 0
		return s
	}
	s.TreeCursor = clamp(s.TreeCursor+delta, 0, len(rows)-1)
	return s
}

func (m *Machine) activateRow(s State, index int) State {
	rows := s.VisibleRows(m.env.Catalog)
	if index < 0 || index >= len(rows) {
		return s
	}
	s.TreeCursor = index
	n := rows[index].Node
	switch {
	case n.IsFolder():
		s = toggleFolder(s, n.ID)
		// Collapsing can shrink the row list below the cursor.
		s.TreeCursor = clamp(s.TreeCursor, 0, len(s.VisibleRows(m.env.Catalog))-1)
	case n.ProjectID != "":
		s = m.selectEntity(s, n.ProjectID)
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Describe returns a one-line summary of s for debug logging.
func Describe(s State) string {
	return fmt.Sprintf("mode=%s selected=%q sidebar=%t terminal=%t tool=%s scale=%.2f",
		s.ViewMode, s.SelectedID, s.SidebarOpen, s.Terminal.Expanded, s.Tool, s.Viewport.Scale)
}
