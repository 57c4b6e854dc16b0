package controller

import (
	"fmt"
	"time"

	"dxfolio/internal/effect"
	"dxfolio/internal/session"
	"dxfolio/internal/tui/design"
	"dxfolio/internal/tui/model"
	"dxfolio/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// dispatch feeds one event through the session machine and turns the effects
// it asks for into commands.
func dispatch(m *model.Model, ev session.Event) tea.Cmd {
	mode := m.State.ViewMode
	cmd := runEffects(m, m.Dispatch(ev))
	if m.State.ViewMode != mode {
		LogDebug(m, controllerSubsystem, "%T: %s", ev, session.Describe(m.State))
	}
	return cmd
}

// runEffects maps effect descriptors to commands. Synchronous effects such as
// theme changes are applied immediately.
func runEffects(m *model.Model, effects []effect.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range effects {
		switch e := e.(type) {
		case effect.Clipboard:
			cmds = append(cmds, copyCmd(m, "clipboard", e.Text, "Copied to clipboard"))
		case effect.Download:
			cmds = append(cmds, downloadCmd(m, e))
		case effect.Print:
			cmds = append(cmds, tea.Tick(e.Delay, func(time.Time) tea.Msg {
				return model.PrintDueMsg{}
			}))
		case effect.Schedule:
			cmds = append(cmds, scheduleCmd(m, e))
		case effect.Theme:
			design.Initialize(!e.Light)
			LogDebug(m, effectSubsystem, "Theme switched (light=%t)", e.Light)
		default:
			LogWarn(effectSubsystem, "Unhandled effect %T", e)
		}
	}
	return tea.Batch(cmds...)
}

func copyCmd(m *model.Model, name, text, done string) tea.Cmd {
	d := m.Desktop
	return func() tea.Msg {
		if d == nil {
			return model.EffectResultMsg{Effect: name, Err: fmt.Errorf("desktop unavailable")}
		}
		if err := d.Copy(text); err != nil {
			return model.EffectResultMsg{Effect: name, Err: err}
		}
		return model.EffectResultMsg{Effect: name, Message: done}
	}
}

func downloadCmd(m *model.Model, e effect.Download) tea.Cmd {
	d := m.Desktop
	return func() tea.Msg {
		if d == nil {
			return model.EffectResultMsg{Effect: "download", Err: fmt.Errorf("desktop unavailable")}
		}
		dest, err := d.Download(e.Source, e.Name)
		if err != nil {
			return model.EffectResultMsg{Effect: "download", Err: err}
		}
		return model.EffectResultMsg{Effect: "download", Message: "Saved " + dest}
	}
}

// printCmd takes the snapshot on the update loop and writes it in the
// background.
func printCmd(m *model.Model) tea.Cmd {
	d := m.Desktop
	snapshot := view.Snapshot(m.Catalog(), m.State)
	return func() tea.Msg {
		if d == nil {
			return model.EffectResultMsg{Effect: "print", Err: fmt.Errorf("desktop unavailable")}
		}
		path, err := d.Print(snapshot)
		if err != nil {
			return model.EffectResultMsg{Effect: "print", Err: err}
		}
		return model.EffectResultMsg{Effect: "print", Message: "Printed to " + path}
	}
}

// scheduleCmd starts the steps of s under its key. Starting a key cancels the
// steps still pending under it, and cancelled steps deliver nothing.
func scheduleCmd(m *model.Model, s effect.Schedule) tea.Cmd {
	tok := m.Schedules.Start(s.Key)
	if len(s.Steps) == 0 {
		m.Schedules.Finish(s.Key, tok)
		return nil
	}

	last := 0
	for i, st := range s.Steps {
		if st.Delay >= s.Steps[last].Delay {
			last = i
		}
	}

	cmds := make([]tea.Cmd, 0, len(s.Steps))
	for i, st := range s.Steps {
		msg := model.ScheduledLineMsg{Key: s.Key, Token: tok, Line: st.Line, Last: i == last}
		cmds = append(cmds, tea.Tick(st.Delay, func(time.Time) tea.Msg {
			if tok.Cancelled() {
				return nil
			}
			return msg
		}))
	}
	return tea.Batch(cmds...)
}

// handleScheduledLineMsg appends a delivered step unless its run was
// cancelled after the timer fired.
func handleScheduledLineMsg(m *model.Model, msg model.ScheduledLineMsg) tea.Cmd {
	if msg.Token == nil || msg.Token.Cancelled() {
		return nil
	}
	cmd := dispatch(m, session.AppendLog{Lines: []string{msg.Line}})
	if msg.Last {
		m.Schedules.Finish(msg.Key, msg.Token)
	}
	return cmd
}

// handleEffectResultMsg reports how an effect went. Failures are logged to the
// terminal and never end the session.
func handleEffectResultMsg(m *model.Model, msg model.EffectResultMsg) tea.Cmd {
	if msg.Err != nil {
		LogError(effectSubsystem, msg.Err, "%s failed", msg.Effect)
		cmd := dispatch(m, session.AppendLog{Lines: []string{fmt.Sprintf("[ERROR] %s: %v", msg.Effect, msg.Err)}})
		return tea.Batch(cmd, m.SetStatusMessage(msg.Effect+" failed", model.StatusBarError, model.StatusMessageTTL))
	}
	LogDebug(m, effectSubsystem, "%s done: %s", msg.Effect, msg.Message)
	if msg.Message == "" {
		return nil
	}
	return m.SetStatusMessage(msg.Message, model.StatusBarSuccess, model.StatusMessageTTL)
}

// quit cancels pending work and ends the program.
func quit(m *model.Model) (*model.Model, tea.Cmd) {
	if m.Schedules != nil {
		m.Schedules.CancelAll()
	}
	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
		m.StatusBarClearCancel = nil
	}
	m.CurrentAppMode = model.ModeQuitting
	m.QuitApp = true
	LogInfo(controllerSubsystem, "Session closed")
	return m, tea.Quit
}
