package session

import (
	"testing"

	"dxfolio/internal/catalog"
	"dxfolio/internal/effect"
	"dxfolio/internal/viewport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return NewMachine(Env{
		Catalog:      cat,
		Host:         "simon-ws",
		SiteURL:      "https://example.com",
		ContactEmail: "me@example.com",
	})
}

func reduce(t *testing.T, m *Machine, s State, events ...Event) State {
	t.Helper()
	for _, ev := range events {
		s, _ = m.Reduce(s, ev)
	}
	return s
}

func TestInitial(t *testing.T) {
	m := newTestMachine(t)

	wide := m.Initial(false, false)
	assert.Equal(t, ViewSchematic, wide.ViewMode)
	assert.True(t, wide.SidebarOpen)
	assert.True(t, wide.TerminalOpen())
	assert.Equal(t, ToolSelect, wide.Tool)
	assert.Equal(t, WideScale, wide.Viewport.Scale)
	assert.Empty(t, wide.SelectedID)

	narrow := m.Initial(true, false)
	assert.False(t, narrow.SidebarOpen)
	assert.Equal(t, NarrowScale, narrow.Viewport.Scale)
}

func TestFocusRoundTrip(t *testing.T) {
	m := newTestMachine(t)

	combos := []struct{ sidebar, terminal bool }{
		{true, true}, {true, false}, {false, true}, {false, false},
	}
	for _, c := range combos {
		s := m.Initial(false, false)
		s.SidebarOpen = c.sidebar
		s.Terminal.Expanded = c.terminal

		s = reduce(t, m, s, SelectEntity{ID: "fadec"})
		assert.Equal(t, ViewDocumentation, s.ViewMode)
		assert.False(t, s.SidebarOpen)
		assert.False(t, s.TerminalOpen())

		s = reduce(t, m, s, CloseDetail{})
		assert.Equal(t, ViewSchematic, s.ViewMode)
		assert.Equal(t, c.sidebar, s.SidebarOpen)
		assert.Equal(t, c.terminal, s.TerminalOpen())
		assert.Equal(t, "fadec", s.SelectedID, "selection persists after close")
	}
}

func TestReselectDoesNotOverwriteSnapshot(t *testing.T) {
	m := newTestMachine(t)
	s := m.Initial(false, false)

	s = reduce(t, m, s,
		SelectEntity{ID: "boe777"},
		SelectEntity{ID: "gannett"},
		CloseDetail{},
	)
	assert.Equal(t, "gannett", s.SelectedID)
	assert.True(t, s.SidebarOpen)
	assert.True(t, s.TerminalOpen())

	s = reduce(t, m, s,
		SelectEntity{ID: "boe777"},
		ToggleSidebar{},
		AppendLog{Lines: []string{"status"}},
	)
	require.True(t, s.SidebarOpen)
	require.True(t, s.TerminalOpen())

	for _, ev := range []Event{SelectEntity{ID: "gannett"}, NextEntity{}, PrevEntity{}} {
		s = reduce(t, m, s, ToggleSidebar{}, ToggleTerminal{}, ev)
		assert.Equal(t, ViewDocumentation, s.ViewMode, "%T", ev)
		assert.False(t, s.SidebarOpen, "%T reapplies the closed sidebar", ev)
		assert.False(t, s.TerminalOpen(), "%T reapplies the closed terminal", ev)
	}

	s = reduce(t, m, s, CloseDetail{})
	assert.True(t, s.SidebarOpen)
	assert.True(t, s.TerminalOpen())
}

func TestSelectUnknownIgnored(t *testing.T) {
	m := newTestMachine(t)
	s := m.Initial(false, false)

	next := reduce(t, m, s, SelectEntity{ID: "nope"})
	assert.Equal(t, s, next)
}

func TestNextPrevWrap(t *testing.T) {
	m := newTestMachine(t)
	cat := m.Catalog()
	n := cat.Len()

	s := reduce(t, m, m.Initial(false, false), SelectEntity{ID: "boe777"})
	for i := 0; i < n; i++ {
		s = reduce(t, m, s, NextEntity{})
	}
	assert.Equal(t, "boe777", s.SelectedID)

	s = reduce(t, m, s, PrevEntity{})
	assert.Equal(t, "metal_det", s.SelectedID)

	s = reduce(t, m, s, NextEntity{})
	assert.Equal(t, "boe777", s.SelectedID)
}

func TestNextAfterCloseReentersDocumentation(t *testing.T) {
	m := newTestMachine(t)
	cat := m.Catalog()
	s := m.Initial(false, false)

	s = reduce(t, m, s, SelectEntity{ID: "boe777"}, CloseDetail{})
	require.Equal(t, ViewSchematic, s.ViewMode)
	require.True(t, s.SidebarOpen)

	want := cat.Entities[(cat.IndexOf("boe777")+1)%cat.Len()].ID
	s = reduce(t, m, s, NextEntity{})
	assert.Equal(t, want, s.SelectedID)
	assert.Equal(t, ViewDocumentation, s.ViewMode)
	assert.False(t, s.SidebarOpen)
	assert.False(t, s.TerminalOpen())

	s = reduce(t, m, s, CloseDetail{}, PrevEntity{}, CloseDetail{})
	assert.Equal(t, "boe777", s.SelectedID)
	assert.True(t, s.SidebarOpen, "snapshot taken on re-entry restores the panels")
	assert.True(t, s.TerminalOpen())
}

func TestNextWithoutSelectionIsNoop(t *testing.T) {
	m := newTestMachine(t)
	s := m.Initial(false, false)

	assert.Equal(t, s, reduce(t, m, s, NextEntity{}))
	assert.Equal(t, s, reduce(t, m, s, PrevEntity{}))

	s.SelectedID = "stale"
	assert.Equal(t, s, reduce(t, m, s, NextEntity{}))
}

func TestTogglesDuringDocumentationAreOverwrittenOnClose(t *testing.T) {
	m := newTestMachine(t)
	s := m.Initial(false, false)
	s.SidebarOpen = false

	s = reduce(t, m, s, SelectEntity{ID: "fadec"}, ToggleSidebar{}, ToggleTerminal{})
	assert.True(t, s.SidebarOpen)
	assert.True(t, s.TerminalOpen())

	s = reduce(t, m, s, CloseDetail{})
	assert.False(t, s.SidebarOpen)
	assert.True(t, s.TerminalOpen())
}

func TestSubmitOpenSelects(t *testing.T) {
	m := newTestMachine(t)
	s := m.Initial(false, false)

	s = reduce(t, m, s, SubmitCommand{Line: "open TECH_DEV"})
	assert.Equal(t, "actuator_board", s.SelectedID)
	assert.Equal(t, ViewDocumentation, s.ViewMode)
	assert.True(t, s.SavedTerminalOpen)
	assert.Contains(t, s.Terminal.Lines, "user@simon-ws:~$ open TECH_DEV")
}

func TestSubmitClearWipesLog(t *testing.T) {
	m := newTestMachine(t)
	s := reduce(t, m, m.Initial(false, false), SubmitCommand{Line: "help"}, SubmitCommand{Line: "CLEAR"})
	assert.Empty(t, s.Terminal.Lines)
}

func TestDispatchAction(t *testing.T) {
	m := newTestMachine(t)
	s := m.Initial(false, false)
	s.Terminal.Expanded = false

	s, effects := m.Reduce(s, DispatchAction{Name: "View"})
	assert.True(t, s.LightMode)
	assert.True(t, s.TerminalOpen(), "action output forces the terminal open")
	assert.Equal(t, "Display Mode: Light", s.Terminal.Lines[len(s.Terminal.Lines)-1])
	assert.Equal(t, []effect.Effect{effect.Theme{Light: true}}, effects)

	s, effects = m.Reduce(s, DispatchAction{Name: "BOM"})
	assert.Empty(t, effects)
	assert.Contains(t, s.Terminal.Lines, "Total Components: 12")

	_, effects = m.Reduce(s, DispatchAction{Name: "File"})
	assert.Equal(t, []effect.Effect{effect.Clipboard{Text: "https://example.com"}}, effects)
}

func TestAppendLogDuringDocumentation(t *testing.T) {
	m := newTestMachine(t)
	s := m.Initial(false, false)
	s.Terminal.Expanded = false

	s = reduce(t, m, s, SelectEntity{ID: "boe777"}, AppendLog{Lines: []string{"late line"}})
	assert.True(t, s.TerminalOpen())

	s = reduce(t, m, s, CloseDetail{})
	assert.False(t, s.TerminalOpen())
	assert.Contains(t, s.Terminal.Lines, "late line")
}

func TestCanvasEvents(t *testing.T) {
	m := newTestMachine(t)
	s := m.Initial(false, false)
	start := s.Viewport.Pan

	s = reduce(t, m, s,
		PointerDown{Pos: viewport.Point{X: 0, Y: 0}, OnBackground: true},
		PointerMove{Pos: viewport.Point{X: 10, Y: 20}},
		PointerUp{},
		PointerMove{Pos: viewport.Point{X: 100, Y: 100}},
	)
	assert.Equal(t, viewport.Point{X: start.X + 10, Y: start.Y + 20}, s.Viewport.Pan)

	s = reduce(t, m, s, SetTool{Tool: ToolPan}, PointerDown{Pos: viewport.Point{}, OnBackground: false})
	assert.True(t, s.Viewport.Dragging())

	s = reduce(t, m, s, PointerUp{}, ZoomIn{})
	assert.InDelta(t, WideScale*1.2, s.Viewport.Scale, 1e-9)

	s = reduce(t, m, s, FitView{AvailW: 1200, AvailH: 820})
	assert.InDelta(t, 1.0, s.Viewport.Scale, 1e-9)
}

func TestTree(t *testing.T) {
	m := newTestMachine(t)
	s := m.Initial(false, false)

	rows := s.VisibleRows(m.Catalog())
	require.Len(t, rows, 13)
	assert.Equal(t, "root", rows[0].Node.ID)
	assert.Equal(t, 2, rows[2].Depth)

	before := s
	s = reduce(t, m, s, ToggleFolder{ID: "experience"})
	assert.Len(t, s.VisibleRows(m.Catalog()), 10)
	assert.Empty(t, before.Collapsed, "input state must not be modified")

	s = reduce(t, m, s, ToggleFolder{ID: "experience"})
	assert.Len(t, s.VisibleRows(m.Catalog()), 13)

	s = reduce(t, m, s, ToggleFolder{ID: "node_tech"})
	s = reduce(t, m, s, ToggleFolder{ID: "no_such_node"})
	assert.Empty(t, s.Collapsed, "only folders can collapse")

	// Row 3 is node_bae2 under the expanded experience folder.
	s = reduce(t, m, s, ActivateTreeRow{Index: 3})
	assert.Equal(t, "fadec", s.SelectedID)
	assert.Equal(t, ViewDocumentation, s.ViewMode)
	assert.Equal(t, 3, s.TreeCursor)

	s = reduce(t, m, s, MoveTreeCursor{Delta: 100})
	assert.Equal(t, 12, s.TreeCursor)
	s = reduce(t, m, s, MoveTreeCursor{Delta: -100})
	assert.Equal(t, 0, s.TreeCursor)

	s = reduce(t, m, s, ActivateTreeRow{Index: 0})
	assert.Len(t, s.VisibleRows(m.Catalog()), 1)
	assert.Equal(t, 0, s.TreeCursor)
}
