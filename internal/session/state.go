package session

import (
	"dxfolio/internal/catalog"
	"dxfolio/internal/terminal"
	"dxfolio/internal/viewport"
)

// ViewMode is the top level surface being shown.
type ViewMode int

const (
	ViewSchematic ViewMode = iota
	ViewDocumentation
)

// String returns a human-readable representation of the view mode.
func (v ViewMode) String() string {
	switch v {
	case ViewSchematic:
		return "Schematic"
	case ViewDocumentation:
		return "Documentation"
	default:
		return "Unknown"
	}
}

// Tool is the active canvas tool.
type Tool int

const (
	ToolSelect Tool = iota
	ToolPan
)

// String returns a human-readable representation of the tool.
func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "SELECT"
	case ToolPan:
		return "PAN"
	default:
		return "UNKNOWN"
	}
}

// Initial scales for the first frame.
const (
	WideScale   = 0.8
	NarrowScale = 0.4
)

// State is the complete interaction state of a session.
type State struct {
	SelectedID        string
	ViewMode          ViewMode
	SidebarOpen       bool
	SavedSidebarOpen  bool
	SavedTerminalOpen bool
	Tool              Tool
	Viewport          viewport.Controller
	Terminal          terminal.Panel
	// Collapsed holds folder ids whose children are hidden. Folders are
	// expanded unless listed.
	Collapsed  map[string]bool
	TreeCursor int
	LightMode  bool
}

// TerminalOpen reports whether the terminal panel is expanded.
func (s State) TerminalOpen() bool {
	return s.Terminal.Expanded
}

// Selected returns the selected entity, if any.
func (s State) Selected(cat *catalog.Catalog) (catalog.Entity, bool) {
	if s.SelectedID == "" {
		return catalog.Entity{}, false
	}
	return cat.ByID(s.SelectedID)
}

// FolderExpanded reports whether the folder with the given id shows its
// children.
func (s State) FolderExpanded(id string) bool {
	return !s.Collapsed[id]
}

// TreeRow is one visible line of the sidebar tree.
type TreeRow struct {
	Node  catalog.Node
	Depth int
}

// VisibleRows flattens the tree, skipping children of collapsed folders.
func (s State) VisibleRows(cat *catalog.Catalog) []TreeRow {
	var rows []TreeRow
	var walk func(nodes []catalog.Node, depth int)
	walk = func(nodes []catalog.Node, depth int) {
		for _, n := range nodes {
			rows = append(rows, TreeRow{Node: n, Depth: depth})
			if n.IsFolder() && s.FolderExpanded(n.ID) {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(cat.Tree, 0)
	return rows
}
