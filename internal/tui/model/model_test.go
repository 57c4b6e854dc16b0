package model

import (
	"fmt"
	"testing"
	"time"

	"dxfolio/internal/catalog"
	"dxfolio/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return InitialModel(TUIConfig{
		Machine: session.NewMachine(session.Env{Catalog: cat, Host: "simon-ws"}),
	})
}

func TestInitialModel(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, ModeInitializing, m.CurrentAppMode)
	assert.Equal(t, FocusCanvas, m.Focus)
	assert.NotNil(t, m.Schedules)
	assert.NotNil(t, m.DocCache)
	assert.Len(t, m.Keys.Menus, len(MenuNames))
	assert.NotNil(t, m.Init())
}

func TestDispatchStoresState(t *testing.T) {
	m := newTestModel(t)
	effects := m.Dispatch(session.SelectEntity{ID: "fadec"})
	assert.Empty(t, effects)
	assert.True(t, m.InDocumentation())
	assert.Equal(t, "fadec", m.State.SelectedID)

	effects = m.Dispatch(session.DispatchAction{Name: "Print"})
	assert.Len(t, effects, 1)
}

func TestAddRawLineToActivityLog(t *testing.T) {
	m := &Model{}
	for i := 0; i < MaxActivityLogLines+5; i++ {
		AddRawLineToActivityLog(m, fmt.Sprintf("line %d", i))
	}
	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.Equal(t, "line 5", m.ActivityLog[0])
	assert.True(t, m.ActivityLogDirty)
}

func TestHistory(t *testing.T) {
	m := &Model{}

	_, ok := RecallHistory(m, -1)
	assert.False(t, ok)

	PushHistory(m, "list")
	PushHistory(m, "list")
	PushHistory(m, "")
	PushHistory(m, "open U1")
	assert.Equal(t, []string{"list", "open U1"}, m.CommandHistory)

	line, ok := RecallHistory(m, -1)
	assert.True(t, ok)
	assert.Equal(t, "open U1", line)
	line, _ = RecallHistory(m, -1)
	assert.Equal(t, "list", line)
	line, _ = RecallHistory(m, -1)
	assert.Equal(t, "list", line)
	line, _ = RecallHistory(m, 1)
	assert.Equal(t, "open U1", line)
	line, _ = RecallHistory(m, 1)
	assert.Equal(t, "", line)
}

func TestHistoryIsBounded(t *testing.T) {
	m := &Model{}
	for i := 0; i < MaxCommandHistory+10; i++ {
		PushHistory(m, fmt.Sprintf("cmd %d", i))
	}
	assert.Len(t, m.CommandHistory, MaxCommandHistory)
	assert.Equal(t, "cmd 10", m.CommandHistory[0])
	assert.Equal(t, MaxCommandHistory, m.HistoryIndex)
}

func TestSetStatusMessage(t *testing.T) {
	m := &Model{Width: 100}

	cmd1 := m.SetStatusMessage("First message", StatusBarSuccess, time.Second)
	require.NotNil(t, cmd1)
	assert.Equal(t, "First message", m.StatusBarMessage)
	assert.Equal(t, StatusBarSuccess, m.StatusBarMessageType)
	first := m.StatusBarClearCancel
	require.NotNil(t, first)

	cmd2 := m.SetStatusMessage("Second message", StatusBarError, time.Second)
	require.NotNil(t, cmd2)
	assert.Equal(t, "Second message", m.StatusBarMessage)
	assert.NotEqual(t, first, m.StatusBarClearCancel)

	select {
	case <-first:
	default:
		t.Error("expected the first clear to be cancelled")
	}
}

func TestEnumStrings(t *testing.T) {
	modes := map[AppMode]string{
		ModeInitializing: "Initializing",
		ModeMain:         "Main",
		ModeHelpOverlay:  "HelpOverlay",
		ModeLogOverlay:   "LogOverlay",
		ModeQuitting:     "Quitting",
		AppMode(99):      "Unknown",
	}
	for mode, want := range modes {
		assert.Equal(t, want, mode.String())
	}

	focus := map[Focus]string{
		FocusCanvas:   "Canvas",
		FocusSidebar:  "Sidebar",
		FocusTerminal: "Terminal",
		Focus(7):      "Unknown",
	}
	for f, want := range focus {
		assert.Equal(t, want, f.String())
	}
}

func TestKeyMapHelp(t *testing.T) {
	k := DefaultKeyMap()
	assert.NotEmpty(t, k.ShortHelp())
	for _, col := range k.FullHelp() {
		assert.NotEmpty(t, col)
	}
	assert.Equal(t, []string{"f6"}, k.Menus[5].Keys())
}
