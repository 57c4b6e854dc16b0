// Package effect describes side effects requested by state transitions. The
// descriptors are plain data; the TUI controller or a CLI runner executes
// them and reports failures back as log lines.
package effect

import "time"

// Effect is one requested side effect.
type Effect interface {
	isEffect()
}

// Clipboard copies Text to the system clipboard.
type Clipboard struct {
	Text string
}

// Download copies the file at Source into the download directory as Name.
type Download struct {
	Source string
	Name   string
}

// Print writes a snapshot of the sheet after Delay.
type Print struct {
	Delay time.Duration
}

// Step is one deferred log line.
type Step struct {
	Delay time.Duration
	Line  string
}

// Schedule appends each step's line after its delay, measured from dispatch.
// Sequences sharing a Key supersede each other.
type Schedule struct {
	Key   string
	Steps []Step
}

// Theme switches the display between light and dark.
type Theme struct {
	Light bool
}

func (Clipboard) isEffect() {}
func (Download) isEffect()  {}
func (Print) isEffect()     {}
func (Schedule) isEffect()  {}
func (Theme) isEffect()     {}
