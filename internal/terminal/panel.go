// Package terminal models the command-line panel docked below the canvas: a
// bounded scrollback log plus an expanded flag.
package terminal

import (
	"dxfolio/internal/catalog"
	"dxfolio/internal/command"
)

// MaxLogLines bounds the scrollback; the oldest lines are dropped first.
const MaxLogLines = 1000

// BootBanner is printed when a panel is created.
var BootBanner = []string{
	"DxDesigner Pro v2025.1.0",
	"Copyright (c) Simon Bullock 2025",
	"Loading system libraries... Done.",
	`Type "help" for available commands.`,
}

// Panel is a value; every mutation returns a new panel and never writes
// through to a slice shared with an earlier value.
type Panel struct {
	Lines    []string
	Expanded bool
}

// New returns an expanded panel holding the boot banner.
func New() Panel {
	return Panel{}.appendLines(BootBanner...).withExpanded(true)
}

// Prompt renders the echo of a submitted line.
func Prompt(host, raw string) string {
	return "user@" + host + ":~$ " + raw
}

func (p Panel) withExpanded(v bool) Panel {
	p.Expanded = v
	return p
}

func (p Panel) appendLines(lines ...string) Panel {
	if len(lines) == 0 {
		return p
	}
	// Full slice expression forces a copy so earlier values stay intact.
	next := append(p.Lines[:len(p.Lines):len(p.Lines)], lines...)
	if len(next) > MaxLogLines {
		next = next[len(next)-MaxLogLines:]
	}
	p.Lines = next
	return p
}

// Append adds lines from outside the command line and forces the panel open.
func (p Panel) Append(lines ...string) Panel {
	return p.appendLines(lines...).withExpanded(true)
}

// ToggleExpand flips the expanded flag. The log survives a collapse.
func (p Panel) ToggleExpand() Panel {
	return p.withExpanded(!p.Expanded)
}

// Clear empties the log.
func (p Panel) Clear() Panel {
	p.Lines = nil
	return p
}

// Submit runs a typed line. Blank input is ignored entirely. The prompt echo
// is suppressed for `clear`, which wipes the log instead. An OPEN action is
// returned for the caller to route.
func (p Panel) Submit(raw string, cat *catalog.Catalog, host string) (Panel, command.Result) {
	verb := command.Verb(raw)
	if verb == "" {
		return p, command.Result{}
	}
	if verb != "clear" {
		p = p.appendLines(Prompt(host, raw))
	}
	res := command.Interpret(raw, cat)
	if res.Action.Kind == command.ActionClear {
		p = p.Clear()
	}
	p = p.appendLines(res.Lines...)
	return p, res
}
