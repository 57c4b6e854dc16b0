package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"dxfolio/internal/agent"
	"dxfolio/internal/command"
	"dxfolio/internal/config"
	"dxfolio/internal/session"
	"dxfolio/internal/tui/controller"
	"dxfolio/internal/tui/model"
	"dxfolio/internal/tui/view"
	"dxfolio/pkg/logging"
)

// RunTUI runs the interactive session until the user quits or ctx ends.
func (a *Application) RunTUI(ctx context.Context) error {
	logging.Info("CLI", "Starting TUI mode...")

	logLevel := logging.LevelInfo
	if a.config.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	p := controller.NewProgram(model.TUIConfig{
		Machine:     a.machine,
		Desktop:     a.desktop,
		DebugMode:   a.config.Debug,
		LightMode:   strings.EqualFold(a.config.Settings.Theme, config.ThemeLight),
		NarrowWidth: a.config.Settings.NarrowWidth,
		LogChannel:  logChan,
		Version:     a.config.Version,
	})

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	if n := logging.Dropped(); n > 0 {
		logging.Warn("TUI-Lifecycle", "%d log entries were dropped while the TUI was busy", n)
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")
	return nil
}

// RunExec runs one interpreter line against a fresh session and writes what
// the terminal would print, without the prompt echo. Opening an entity also
// prints its documentation.
func (a *Application) RunExec(line string, w io.Writer) error {
	s := a.machine.Initial(false, false)
	before := len(s.Terminal.Lines)
	s, _ = a.machine.Reduce(s, session.SubmitCommand{Line: line})

	lines := s.Terminal.Lines
	if len(lines) > before {
		lines = lines[before:]
	} else {
		lines = nil
	}
	if len(lines) > 0 && strings.HasPrefix(lines[0], "user@") {
		lines = lines[1:]
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	if e, ok := s.Selected(a.catalog); ok && s.ViewMode == session.ViewDocumentation {
		if _, err := fmt.Fprintln(w, "\n"+view.RenderDocBody(e, 80)); err != nil {
			return err
		}
	}
	return nil
}

// RunList writes the entity listing, optionally followed by the passives.
func (a *Application) RunList(w io.Writer, passives bool) error {
	for _, e := range a.catalog.Entities {
		if _, err := fmt.Fprintln(w, command.ListLine(e)); err != nil {
			return err
		}
	}
	if !passives {
		return nil
	}
	for _, p := range a.catalog.Passives {
		if _, err := fmt.Fprintf(w, "  [%s] %-12s : %s\n", p.Type, p.RefDes, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// RunAgent serves the portfolio over MCP on stdio until the client
// disconnects.
func (a *Application) RunAgent() error {
	return agent.NewServer(a.catalog, a.config.Settings.Host, a.config.Version).ServeStdio()
}
