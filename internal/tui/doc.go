// Package tui holds the interactive schematic workspace.
//
// The work is split across subpackages following the Model-View-Controller
// layout used by bubbletea programs:
//
//   - model: application state, messages, key bindings and the bridge to the
//     session state machine
//   - view: pure rendering of the frame (menu bar, toolbar, sidebar, canvas,
//     terminal, status bar and overlays) plus hit testing helpers
//   - controller: the tea.Model that routes keyboard and mouse input into
//     session events and executes the effects they return
//   - components: reusable layout pieces such as panels and item bars
//   - design: colors, spacing and styles for dark and light themes
//   - utils: width-aware string helpers
//
// All state changes go through session.Machine. The controller never mutates
// the schematic state directly; it dispatches an event and runs whatever
// effects come back (clipboard writes, downloads, print jobs, scheduled
// terminal output, theme switches).
package tui
