package view

import (
	"strings"

	"dxfolio/internal/catalog"
	"dxfolio/internal/session"
	"dxfolio/internal/tui/components"
	"dxfolio/internal/tui/design"
	"dxfolio/internal/tui/model"
	"dxfolio/internal/tui/utils"

	"github.com/sahilm/fuzzy"
)

// Filtered reports whether the explorer shows filter results instead of the
// tree.
func Filtered(m *model.Model) bool {
	return m.Filtering || strings.TrimSpace(m.FilterInput.Value()) != ""
}

// SidebarRows returns the rows the explorer shows.
func SidebarRows(m *model.Model) []session.TreeRow {
	cat := m.Catalog()
	if q := strings.TrimSpace(m.FilterInput.Value()); q != "" {
		return FilterRows(cat, q)
	}
	if m.Filtering {
		return FilterRows(cat, "")
	}
	return m.State.VisibleRows(cat)
}

// SidebarCursor returns the highlighted row index.
func SidebarCursor(m *model.Model) int {
	if Filtered(m) {
		return m.FilterCursor
	}
	return m.State.TreeCursor
}

type fileNames []catalog.Node

func (f fileNames) String(i int) string { return f[i].Name }
func (f fileNames) Len() int            { return len(f) }

// FilterRows returns the files whose names fuzzy-match query, best first.
// An empty query lists every file in tree order.
func FilterRows(cat *catalog.Catalog, query string) []session.TreeRow {
	var files fileNames
	var walk func([]catalog.Node)
	walk = func(nodes []catalog.Node) {
		for _, n := range nodes {
			if n.IsFolder() {
				walk(n.Children)
				continue
			}
			files = append(files, n)
		}
	}
	walk(cat.Tree)

	var rows []session.TreeRow
	if query == "" {
		for _, n := range files {
			rows = append(rows, session.TreeRow{Node: n})
		}
		return rows
	}
	for _, match := range fuzzy.FindFrom(query, files) {
		rows = append(rows, session.TreeRow{Node: files[match.Index]})
	}
	return rows
}

func sidebarPanel(m *model.Model, f Frame) *components.Panel {
	return components.NewPanel("EXPLORER").
		WithHint("/ filter").
		WithDimensions(f.Sidebar.W, f.Sidebar.H).
		SetFocused(m.Focus == model.FocusSidebar)
}

// sidebarWindow returns the first visible row index and how many rows fit.
func sidebarWindow(m *model.Model, f Frame) (offset, visible int) {
	_, h := sidebarPanel(m, f).InnerSize()
	if Filtered(m) {
		h--
	}
	visible = max(h, 0)
	if cursor := SidebarCursor(m); visible > 0 && cursor >= visible {
		offset = cursor - visible + 1
	}
	return offset, visible
}

// SidebarRowAt returns the row index under the screen cell (x, y).
func SidebarRowAt(m *model.Model, f Frame, x, y int) (int, bool) {
	if !f.Sidebar.Contains(x, y) {
		return 0, false
	}
	_, oy := sidebarPanel(m, f).ContentOrigin()
	row := y - f.Sidebar.Y - oy
	if Filtered(m) {
		row--
	}
	offset, visible := sidebarWindow(m, f)
	if row < 0 || row >= visible {
		return 0, false
	}
	index := offset + row
	if index >= len(SidebarRows(m)) {
		return 0, false
	}
	return index, true
}

func renderSidebar(m *model.Model, f Frame) string {
	if f.Sidebar.Empty() {
		return ""
	}
	panel := sidebarPanel(m, f)
	width, _ := panel.InnerSize()
	rows := SidebarRows(m)
	cursor := SidebarCursor(m)
	offset, visible := sidebarWindow(m, f)

	var lines []string
	if Filtered(m) {
		lines = append(lines, m.FilterInput.View())
	}
	if len(rows) == 0 {
		lines = append(lines, design.DimStyle.Render("no matches"))
	}
	for i := offset; i < len(rows) && i < offset+visible; i++ {
		lines = append(lines, renderTreeRow(m, rows[i], width, i == cursor))
	}
	return panel.WithContent(strings.Join(lines, "\n")).Render()
}

func renderTreeRow(m *model.Model, row session.TreeRow, width int, atCursor bool) string {
	n := row.Node
	var text string
	style := design.TreeRowStyle
	switch {
	case n.IsFolder():
		marker := "▾"
		if !m.State.FolderExpanded(n.ID) {
			marker = "▸"
		}
		text = strings.Repeat("  ", row.Depth) + marker + " " + n.Name + "/"
		style = design.TreeFolderStyle
	default:
		text = strings.Repeat("  ", row.Depth) + "  " + n.Name
		if n.ProjectID != "" && n.ProjectID == m.State.SelectedID {
			style = design.TreeSelectedStyle
		}
	}
	text = utils.PadRight(text, width)
	if atCursor && m.Focus == model.FocusSidebar {
		style = design.TreeCursorStyle
	}
	return style.Render(text)
}
