package session

import "dxfolio/internal/viewport"

// Event is an input to Machine.Reduce.
type Event interface {
	isEvent()
}

// SelectEntity opens the documentation for an entity. Unknown ids are
// ignored.
type SelectEntity struct{ ID string }

// CloseDetail leaves the documentation and restores the saved panels.
type CloseDetail struct{}

// NextEntity and PrevEntity move the selection through the catalog,
// wrapping at either end.
type NextEntity struct{}
type PrevEntity struct{}

// ToggleSidebar flips the sidebar in any view mode.
type ToggleSidebar struct{}
// ToggleTerminal expands or collapses the terminal panel.
type ToggleTerminal struct{}

// SetTool picks the canvas tool used by pointer drags.
type SetTool struct{ Tool Tool }

// ZoomIn and ZoomOut step the canvas scale by the toolbar factors.
type ZoomIn struct{}
type ZoomOut struct{}

// Wheel is a scroll gesture over the canvas in screen units.
type Wheel struct {
	DeltaX, DeltaY float64
	Modifier       bool
}

// PointerDown is a press on the canvas. OnBackground is true when no part was
// hit.
type PointerDown struct {
	Pos          viewport.Point
	OnBackground bool
}

// PointerMove pans the canvas while a drag is active.
type PointerMove struct{ Pos viewport.Point }
// PointerUp ends a drag.
type PointerUp struct{}

// FitView fits the sheet into an area of the given screen size.
type FitView struct{ AvailW, AvailH float64 }

// SubmitCommand runs a line typed into the terminal.
type SubmitCommand struct{ Line string }

// DispatchAction runs a named menu or toolbar action.
type DispatchAction struct{ Name string }

// AppendLog adds lines to the terminal from outside the command line. It
// forces the terminal open.
type AppendLog struct{ Lines []string }

// ToggleFolder expands or collapses a sidebar folder.
type ToggleFolder struct{ ID string }

// MoveTreeCursor moves the sidebar cursor by Delta visible rows, clamped.
type MoveTreeCursor struct{ Delta int }

// ActivateTreeRow moves the cursor to a visible row and activates it: folders
// toggle, files linked to an entity select it.
type ActivateTreeRow struct{ Index int }

func (SelectEntity) isEvent()    {}
func (CloseDetail) isEvent()     {}
func (NextEntity) isEvent()      {}
func (PrevEntity) isEvent()      {}
func (ToggleSidebar) isEvent()   {}
func (ToggleTerminal) isEvent()  {}
func (SetTool) isEvent()         {}
func (ZoomIn) isEvent()          {}
func (ZoomOut) isEvent()         {}
func (Wheel) isEvent()           {}
func (PointerDown) isEvent()     {}
func (PointerMove) isEvent()     {}
func (PointerUp) isEvent()       {}
func (FitView) isEvent()         {}
func (SubmitCommand) isEvent()   {}
func (DispatchAction) isEvent()  {}
func (AppendLog) isEvent()       {}
func (ToggleFolder) isEvent()    {}
func (MoveTreeCursor) isEvent()  {}
func (ActivateTreeRow) isEvent() {}
