package controller

import (
	"dxfolio/internal/session"
	"dxfolio/internal/tui/model"
	"dxfolio/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	controllerSubsystem = "Controller"
	keySubsystem        = "KeyHandler"
	mouseSubsystem      = "MouseHandler"
	effectSubsystem     = "Effects"
)

// LogInfo logs an informational message.
func LogInfo(subsystem string, format string, a ...interface{}) {
	logging.Info(subsystem, format, a...)
}

// LogDebug logs a debug-level message. It respects the TUI model's DebugMode
// flag.
func LogDebug(m *model.Model, subsystem string, format string, a ...interface{}) {
	if m != nil && m.DebugMode {
		logging.Debug(subsystem, format, a...)
	}
}

// LogWarn logs a warning message.
func LogWarn(subsystem string, format string, a ...interface{}) {
	logging.Warn(subsystem, format, a...)
}

// LogError logs an error message.
func LogError(subsystem string, err error, format string, a ...interface{}) {
	logging.Error(subsystem, err, format, a...)
}

// listenForLogs waits for the next entry on the logging channel. It is
// re-armed after every entry.
func listenForLogs(ch <-chan logging.LogEntry) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return model.NewLogEntryMsg{Entry: entry}
	}
}

// handleNewLogEntryMsg records the entry in the activity log. With debug on
// it is also echoed into the terminal panel. Nothing here logs, or every
// entry would produce another.
func handleNewLogEntryMsg(m *model.Model, msg model.NewLogEntryMsg) tea.Cmd {
	line := msg.Entry.Line()
	model.AddRawLineToActivityLog(m, line)
	if m.DebugMode {
		m.Dispatch(session.AppendLog{Lines: []string{"[DEBUG] " + line}})
	}
	if m.LogChannel == nil {
		return nil
	}
	return listenForLogs(m.LogChannel)
}
