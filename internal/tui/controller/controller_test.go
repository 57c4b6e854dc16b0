package controller

import (
	"errors"
	"strings"
	"testing"

	"dxfolio/internal/action"
	"dxfolio/internal/catalog"
	"dxfolio/internal/desktop"
	"dxfolio/internal/effect"
	"dxfolio/internal/session"
	"dxfolio/internal/tui/model"
	"dxfolio/internal/tui/view"
	"dxfolio/internal/viewport"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func newTestModel(t *testing.T, width, height int) *model.Model {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	machine := session.NewMachine(session.Env{
		Catalog:         cat,
		Host:            "simon-ws",
		SiteURL:         "https://example.com",
		ContactEmail:    "me@example.com",
		SimulationSteps: action.DefaultSimulationSteps,
	})
	m := model.InitialModel(model.TUIConfig{
		Machine:     machine,
		Desktop:     desktop.New(&fakeClipboard{}, t.TempDir()),
		NarrowWidth: 100,
	})
	m, _ = mainControllerDispatch(m, tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

func send(m *model.Model, msgs ...tea.Msg) *model.Model {
	for _, msg := range msgs {
		m, _ = mainControllerDispatch(m, msg)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func lastLine(m *model.Model) string {
	lines := m.State.Terminal.Lines
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}

func TestWindowSizeInitializesLayout(t *testing.T) {
	wide := newTestModel(t, 160, 50)
	assert.Equal(t, model.ModeMain, wide.CurrentAppMode)
	assert.True(t, wide.State.SidebarOpen)
	assert.Equal(t, session.WideScale, wide.State.Viewport.Scale)

	narrow := newTestModel(t, 80, 40)
	assert.False(t, narrow.State.SidebarOpen)
	assert.Equal(t, session.NarrowScale, narrow.State.Viewport.Scale)

	// Later resizes keep the session.
	wide.State.SelectedID = "fadec"
	wide = send(wide, tea.WindowSizeMsg{Width: 90, Height: 30})
	assert.Equal(t, "fadec", wide.State.SelectedID)
	assert.True(t, wide.State.SidebarOpen)
}

func TestTerminalSubmitAndHistory(t *testing.T) {
	m := newTestModel(t, 160, 50)
	m = send(m, runes(":"))
	require.Equal(t, model.FocusTerminal, m.Focus)

	m.CommandInput.SetValue("list")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Contains(t, m.State.Terminal.Lines, "user@simon-ws:~$ list")
	assert.Equal(t, []string{"list"}, m.CommandHistory)
	assert.Empty(t, m.CommandInput.Value())
	assert.Contains(t, m.TerminalContent, "U_BAE_01")

	m = send(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "list", m.CommandInput.Value())

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, model.FocusCanvas, m.Focus)
}

func TestTerminalOpenCommandLeavesPrompt(t *testing.T) {
	m := newTestModel(t, 160, 50)
	m = send(m, runes(":"))
	m.CommandInput.SetValue("open U_GF_01")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.InDocumentation())
	assert.Equal(t, "gannett", m.State.SelectedID)
	assert.Equal(t, model.FocusCanvas, m.Focus)
	assert.Equal(t, "gannett", m.DocEntityID)

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.InDocumentation())
	assert.True(t, m.State.SidebarOpen)
	assert.True(t, m.State.TerminalOpen())
}

func TestDocumentationKeysStep(t *testing.T) {
	m := newTestModel(t, 160, 50)
	m.Dispatch(session.SelectEntity{ID: "metal_det"})
	m = send(m, runes("n"))
	assert.Equal(t, "boe777", m.State.SelectedID)
	m = send(m, runes("N"))
	assert.Equal(t, "metal_det", m.State.SelectedID)

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.InDocumentation())
	m = send(m, runes("n"))
	assert.True(t, m.InDocumentation(), "n reopens the documentation on the next entity")
	assert.Equal(t, "boe777", m.State.SelectedID)
	assert.False(t, m.State.SidebarOpen)
}

func TestCompleteLine(t *testing.T) {
	refs := []string{"U_BAE_01", "U_BAE_02", "U_GF_01", "SEN_PROJ"}
	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{"open u_gf", "open U_GF_01", true},
		{"open SEN", "open SEN_PROJ", true},
		{"open U_BAE", "open U_BAE", false},
		{"open X", "open X", false},
		{"list U", "list U", false},
		{"open U_GF_01 ", "open U_GF_01 ", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := completeLine(tt.line, refs)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextFocus(t *testing.T) {
	order := []model.Focus{model.FocusCanvas, model.FocusSidebar, model.FocusTerminal}
	assert.Equal(t, model.FocusSidebar, nextFocus(order, model.FocusCanvas, 1))
	assert.Equal(t, model.FocusCanvas, nextFocus(order, model.FocusTerminal, 1))
	assert.Equal(t, model.FocusTerminal, nextFocus(order, model.FocusCanvas, -1))
	assert.Equal(t, model.FocusCanvas, nextFocus(order[:1], model.FocusTerminal, 1))
	assert.Equal(t, model.FocusSidebar, nextFocus(nil, model.FocusSidebar, 1))
}

func TestTabSkipsClosedPanes(t *testing.T) {
	m := newTestModel(t, 160, 50)
	m.Dispatch(session.ToggleSidebar{})
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, model.FocusTerminal, m.Focus)
}

func TestScheduleSupersedesPendingRun(t *testing.T) {
	m := newTestModel(t, 160, 50)
	steps := []effect.Step{{Line: "a"}, {Line: "b"}}

	pending := m.Schedules.Start(action.SimulationKey)
	scheduleCmd(m, effect.Schedule{Key: action.SimulationKey, Steps: steps})

	assert.True(t, pending.Cancelled())
	assert.Equal(t, 1, m.Schedules.Pending())

	before := len(m.State.Terminal.Lines)
	m = send(m, model.ScheduledLineMsg{Key: action.SimulationKey, Token: pending, Line: "stale"})
	assert.Len(t, m.State.Terminal.Lines, before)
}

func TestEmptyScheduleLeavesNothingPending(t *testing.T) {
	m := newTestModel(t, 160, 50)
	assert.Nil(t, scheduleCmd(m, effect.Schedule{Key: "empty"}))
	assert.Equal(t, 0, m.Schedules.Pending())
}

func TestScheduledLineAppendsAndFinishes(t *testing.T) {
	m := newTestModel(t, 160, 50)
	tok := m.Schedules.Start("demo")

	m = send(m, model.ScheduledLineMsg{Key: "demo", Token: tok, Line: "step one"})
	assert.Equal(t, "step one", lastLine(m))
	assert.Equal(t, 1, m.Schedules.Pending())

	m = send(m, model.ScheduledLineMsg{Key: "demo", Token: tok, Line: "done", Last: true})
	assert.Equal(t, "done", lastLine(m))
	assert.Equal(t, 0, m.Schedules.Pending())
}

func TestSimulationActionStartsSchedule(t *testing.T) {
	m := newTestModel(t, 160, 50)
	cmd := dispatch(m, session.DispatchAction{Name: "Simulation"})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.Schedules.Pending())
	assert.Equal(t, "Initializing Logic Simulation...", lastLine(m))
}

func TestQuitCancelsSchedules(t *testing.T) {
	m := newTestModel(t, 160, 50)
	tok := m.Schedules.Start(action.SimulationKey)

	m, cmd := mainControllerDispatch(m, runes("q"))
	require.NotNil(t, cmd)
	assert.True(t, tok.Cancelled())
	assert.Equal(t, model.ModeQuitting, m.CurrentAppMode)
	assert.True(t, m.QuitApp)
}

func TestEffectFailureIsLogged(t *testing.T) {
	m := newTestModel(t, 160, 50)
	m = send(m, model.EffectResultMsg{Effect: "clipboard", Err: errors.New("no display")})

	assert.Equal(t, "[ERROR] clipboard: no display", lastLine(m))
	assert.Equal(t, model.StatusBarError, m.StatusBarMessageType)
	assert.Equal(t, "clipboard failed", m.StatusBarMessage)
}

func TestClipboardEffectRunsThroughDesktop(t *testing.T) {
	m := newTestModel(t, 160, 50)
	cb := &fakeClipboard{}
	m.Desktop = desktop.New(cb, t.TempDir())

	msg := copyCmd(m, "clipboard", "https://example.com", "Copied")()
	assert.Equal(t, model.EffectResultMsg{Effect: "clipboard", Message: "Copied"}, msg)
	assert.Equal(t, "https://example.com", cb.text)

	cb.err = errors.New("denied")
	res := copyCmd(m, "clipboard", "x", "Copied")().(model.EffectResultMsg)
	assert.Error(t, res.Err)
}

func TestDownloadWithoutResumeFails(t *testing.T) {
	m := newTestModel(t, 160, 50)
	res := downloadCmd(m, effect.Download{Name: "resume.pdf"})().(model.EffectResultMsg)
	assert.ErrorIs(t, res.Err, desktop.ErrNoResume)
}

func TestPrintWritesSnapshot(t *testing.T) {
	m := newTestModel(t, 160, 50)
	res := printCmd(m)().(model.EffectResultMsg)
	require.NoError(t, res.Err)
	assert.True(t, strings.HasPrefix(res.Message, "Printed to "))
}

func TestToolbarClicks(t *testing.T) {
	m := newTestModel(t, 160, 50)
	f := view.ComputeFrame(m)

	rects := map[string]int{}
	for _, h := range view.Toolbar(m, f).Layout() {
		rects[h.ID] = h.Rect.X
	}
	require.Contains(t, rects, view.ButtonPan)

	m = send(m, click(rects[view.ButtonPan], f.Toolbar.Y))
	assert.Equal(t, session.ToolPan, m.State.Tool)

	scale := m.State.Viewport.Scale
	m = send(m, click(rects[view.ButtonZoomIn], f.Toolbar.Y))
	assert.InDelta(t, scale*viewport.ZoomInFactor, m.State.Viewport.Scale, 1e-9)

	m = send(m, click(rects["BOM"], f.Toolbar.Y))
	assert.Equal(t, "Export complete.", lastLine(m))
}

func TestMenuClickDispatchesAction(t *testing.T) {
	m := newTestModel(t, 160, 50)
	f := view.ComputeFrame(m)
	editX := -1
	for _, h := range view.MenuBar(m, f).Layout() {
		if h.ID == "Edit" {
			editX = h.Rect.X
		}
	}
	require.GreaterOrEqual(t, editX, 0)
	m = send(m, click(editX, f.Menu.Y))
	assert.Equal(t, "Command 'Edit' selected.", lastLine(m))
}

func TestFunctionKeyMenus(t *testing.T) {
	m := newTestModel(t, 160, 50)
	m = send(m, tea.KeyMsg{Type: tea.KeyF8})
	assert.Equal(t, "Command 'Window' selected.", lastLine(m))
}

// findPart scans the canvas for a cell over a part.
func findPart(m *model.Model, f view.Frame) (int, int, string, bool) {
	for row := 0; row < f.Canvas.H; row++ {
		for col := 0; col < f.Canvas.W; col++ {
			if id, ok := view.PartAt(m.Catalog(), m.State.Viewport, col, row); ok {
				return f.Canvas.X + col, f.Canvas.Y + row, id, true
			}
		}
	}
	return 0, 0, "", false
}

func TestCanvasClickSelectsPart(t *testing.T) {
	m := newTestModel(t, 160, 50)
	f := view.ComputeFrame(m)
	x, y, id, ok := findPart(m, f)
	require.True(t, ok)

	m = send(m, click(x, y))
	assert.True(t, m.InDocumentation())
	assert.Equal(t, id, m.State.SelectedID)
}

func TestPanToolDragOverPart(t *testing.T) {
	m := newTestModel(t, 160, 50)
	m.Dispatch(session.SetTool{Tool: session.ToolPan})
	f := view.ComputeFrame(m)
	x, y, _, ok := findPart(m, f)
	require.True(t, ok)
	pan := m.State.Viewport.Pan

	m = send(m,
		click(x, y),
		tea.MouseMsg{X: x + 3, Y: y + 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: x + 3, Y: y + 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	)
	assert.False(t, m.InDocumentation())
	assert.Equal(t, pan.X+3*view.CellW, m.State.Viewport.Pan.X)
	assert.Equal(t, pan.Y+1*view.CellH, m.State.Viewport.Pan.Y)
	assert.False(t, m.State.Viewport.Dragging())
}

func TestCanvasWheel(t *testing.T) {
	m := newTestModel(t, 160, 50)
	f := view.ComputeFrame(m)
	x, y := f.Canvas.X+5, f.Canvas.Y+5
	pan := m.State.Viewport.Pan
	scale := m.State.Viewport.Scale

	m = send(m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, pan.Y-wheelStep, m.State.Viewport.Pan.Y)

	m = send(m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp, Ctrl: true})
	assert.Greater(t, m.State.Viewport.Scale, scale)
}

func TestSidebarFilterSelects(t *testing.T) {
	m := newTestModel(t, 160, 50)
	m = send(m, runes("/"))
	require.True(t, m.Filtering)
	require.Equal(t, model.FocusSidebar, m.Focus)

	m = send(m, runes("m"), runes("e"), runes("t"), runes("a"), runes("l"))
	assert.Equal(t, "metal", m.FilterInput.Value())
	rows := view.SidebarRows(m)
	require.NotEmpty(t, rows)
	assert.Equal(t, "metal_det", rows[0].Node.ProjectID)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Filtering)
	assert.Equal(t, "metal_det", m.State.SelectedID)
	assert.True(t, m.InDocumentation())
}

func TestSidebarKeysWalkTree(t *testing.T) {
	m := newTestModel(t, 160, 50)
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, model.FocusSidebar, m.Focus)

	// Row 1 is the Professional_Exp folder.
	m = send(m, runes("j"), runes("h"))
	assert.False(t, m.State.FolderExpanded("experience"))
	m = send(m, runes("l"))
	assert.True(t, m.State.FolderExpanded("experience"))

	m = send(m, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "boe777", m.State.SelectedID)
}

func TestDebugLogEntriesReachTerminal(t *testing.T) {
	m := newTestModel(t, 160, 50)
	m.DebugMode = true
	m.Dispatch(session.ToggleTerminal{})

	m = send(m, model.NewLogEntryMsg{})
	assert.True(t, strings.HasPrefix(lastLine(m), "[DEBUG] "))
	assert.True(t, m.State.TerminalOpen())
	assert.Len(t, m.ActivityLog, 1)

	m.DebugMode = false
	before := len(m.State.Terminal.Lines)
	m = send(m, model.NewLogEntryMsg{})
	assert.Len(t, m.State.Terminal.Lines, before)
	assert.Len(t, m.ActivityLog, 2)
}

func TestHelpOverlayToggle(t *testing.T) {
	m := newTestModel(t, 160, 50)
	m = send(m, runes("?"))
	assert.Equal(t, model.ModeHelpOverlay, m.CurrentAppMode)
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, model.ModeMain, m.CurrentAppMode)
}

func TestThemeActionFlipsDesign(t *testing.T) {
	m := newTestModel(t, 160, 50)
	require.False(t, m.State.LightMode)
	m = send(m, tea.KeyMsg{Type: tea.KeyF3})
	assert.True(t, m.State.LightMode)
	assert.Equal(t, "Display Mode: Light", lastLine(m))
	m = send(m, tea.KeyMsg{Type: tea.KeyF3})
	assert.False(t, m.State.LightMode)
}
