package controller

import (
	"dxfolio/internal/tui/model"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// mainControllerDispatch is the central message routing function for the TUI
// application. Every handler leaves the model consistent; the viewports are
// synced once at the end.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg.(type) {
	case spinner.TickMsg, tea.MouseMsg, model.NewLogEntryMsg:
		// Too frequent, or self-referential.
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m, cmd = handleWindowSizeMsg(m, msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		m, cmd = handleKeyMsg(m, msg)
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		m, cmd = handleMouseMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.EffectResultMsg:
		cmds = append(cmds, handleEffectResultMsg(m, msg))

	case model.PrintDueMsg:
		cmds = append(cmds, printCmd(m))

	case model.ScheduledLineMsg:
		cmds = append(cmds, handleScheduledLineMsg(m, msg))

	case model.NewLogEntryMsg:
		cmds = append(cmds, handleNewLogEntryMsg(m, msg))

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		m.StatusBarClearCancel = nil

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)
		cmds = append(cmds, cmd)

	default:
		// Cursor blink and other input-internal messages.
		if m.Focus == model.FocusTerminal {
			m.CommandInput, cmd = m.CommandInput.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.Filtering {
			m.FilterInput, cmd = m.FilterInput.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.QuitApp {
		return m, tea.Batch(cmds...)
	}
	syncViewports(m)
	return m, tea.Batch(cmds...)
}
