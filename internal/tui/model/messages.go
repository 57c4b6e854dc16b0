package model

import (
	"dxfolio/internal/schedule"
	"dxfolio/pkg/logging"
)

// ---- Effect results ----

// EffectResultMsg reports a finished clipboard, download or print effect.
// Message is logged to the terminal on success, Err as an [ERROR] line.
type EffectResultMsg struct {
	Effect  string
	Message string
	Err     error
}

// PrintDueMsg fires when a deferred print is ready to be taken.
type PrintDueMsg struct{}

// ScheduledLineMsg delivers one step of a scheduled log sequence.
type ScheduledLineMsg struct {
	Key   string
	Token *schedule.Token
	Line  string
	Last  bool
}

// ---- Logging ----

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ---- Misc overlay / status bar ----

type ClearStatusBarMsg struct{}
