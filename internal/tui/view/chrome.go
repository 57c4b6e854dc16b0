package view

import (
	"fmt"

	"dxfolio/internal/session"
	"dxfolio/internal/tui/components"
	"dxfolio/internal/tui/design"
	"dxfolio/internal/tui/model"
)

// Toolbar button ids that drive the canvas instead of naming an action.
const (
	ButtonZoomIn  = "zoom-in"
	ButtonZoomOut = "zoom-out"
	ButtonSelect  = "tool-select"
	ButtonPan     = "tool-pan"
	ButtonFit     = "fit"
)

// MenuBar returns the menu bar laid out on its frame row.
func MenuBar(m *model.Model, f Frame) *components.ItemBar {
	items := make([]components.BarItem, len(model.MenuNames))
	for i, name := range model.MenuNames {
		items[i] = components.BarItem{ID: name, Label: name}
	}
	return components.NewItemBar(f.Menu.Y, f.Menu.W, items...)
}

// Toolbar returns the tool bar laid out on its frame row. Ids other than the
// Button constants are action names.
func Toolbar(m *model.Model, f Frame) *components.ItemBar {
	tool := m.State.Tool
	bar := components.NewItemBar(f.Toolbar.Y, f.Toolbar.W,
		components.BarItem{ID: "Save Resume", Label: "Save", Group: 0},
		components.BarItem{ID: "Print", Label: "Print", Group: 0},
		components.BarItem{ID: "Undo", Label: "Undo", Group: 1},
		components.BarItem{ID: "Redo", Label: "Redo", Group: 1},
		components.BarItem{ID: ButtonZoomIn, Label: "Zoom+", Group: 2},
		components.BarItem{ID: ButtonZoomOut, Label: "Zoom-", Group: 2},
		components.BarItem{ID: ButtonFit, Label: "Fit", Group: 2},
		components.BarItem{ID: ButtonSelect, Label: "Select", Group: 3, Active: tool == session.ToolSelect},
		components.BarItem{ID: ButtonPan, Label: "Pan", Group: 3, Active: tool == session.ToolPan},
		components.BarItem{ID: "Settings", Label: "Settings", Group: 4},
		components.BarItem{ID: "BOM", Label: "BOM", Group: 4},
	)
	return bar.WithStyles(
		design.ToolbarStyle,
		design.ToolButtonStyle.Padding(0, design.SpaceXS),
		design.ToolButtonActiveStyle.Padding(0, design.SpaceXS),
	)
}

func renderHeader(m *model.Model, f Frame) string {
	right := "DARK"
	if m.State.LightMode {
		right = "LIGHT"
	}
	h := components.NewHeader(model.ProductName).
		WithSubtitle(model.DocumentName).
		WithRightContent(right).
		WithWidth(f.Header.W)
	if m.Schedules != nil && m.Schedules.Pending() > 0 {
		h = h.WithSpinner(m.Spinner.View())
	}
	return h.Render()
}

// CursorWorld returns the sheet position under the mouse, when it is over the
// canvas.
func CursorWorld(m *model.Model, f Frame) (float64, float64, bool) {
	if !f.Canvas.Contains(m.MouseX, m.MouseY) {
		return 0, 0, false
	}
	col := float64(m.MouseX - f.Canvas.X)
	row := float64(m.MouseY - f.Canvas.Y)
	x, y := m.State.Viewport.ToWorld(pointAt(col, row))
	return x, y, true
}

func renderStatusBar(m *model.Model, f Frame) string {
	cat := m.Catalog()
	coords := "X: ---- Y: ----"
	if x, y, ok := CursorWorld(m, f); ok {
		coords = fmt.Sprintf("X: %.2f Y: %.2f", x, y)
	}
	grid := cat.Sheet.Grid
	if grid == "" {
		grid = "50mil"
	}
	bar := components.NewStatusBar(f.Status.W).
		WithSegments("READY", "GRID: "+grid, coords, "TOOL: "+m.State.Tool.String()).
		WithRightText(cat.Profile.Name + " | " + cat.Profile.Headline)
	if m.StatusBarMessage != "" {
		bar = bar.WithMessage(m.StatusBarMessage, m.StatusBarMessageType)
	}
	return bar.Render()
}
