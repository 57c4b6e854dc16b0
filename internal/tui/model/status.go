package model

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusMessageTTL is how long transient status bar messages stay up.
const StatusMessageTTL = 3 * time.Second

// SetStatusMessage shows message in the status bar and returns a command that
// clears it after clearAfter. A newer message cancels the pending clear of an
// older one.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}
	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}
