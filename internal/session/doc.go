// Package session owns the interaction state of a portfolio session and the
// transitions between states.
//
// State is a value. Machine.Reduce takes a state and an event and returns the
// next state plus the side effects the caller must run; it performs no I/O
// itself. The TUI controller feeds it key, mouse and timer input, and the
// view renders whatever state it returns.
//
// # Focus mode
//
// Selecting an entity from the schematic enters the documentation view. On
// that edge the sidebar and terminal visibility are saved and both panels are
// closed. Selecting another entity while documentation is showing only
// re-targets it. Closing the documentation restores the saved visibility,
// which overwrites any toggle made while the documentation covered the
// screen.
package session
