package view

import (
	"dxfolio/internal/tui/components"
	"dxfolio/internal/tui/design"
	"dxfolio/internal/tui/model"
	"dxfolio/internal/viewport"
)

// A terminal cell stands for this many sheet pixels at scale 1.
const (
	CellW = 10
	CellH = 20
)

// Rows taken by the chrome above and below the work area.
const (
	headerRow  = 0
	menuRow    = 1
	toolbarRow = 2
	topRows    = 3
	statusRows = 1
)

// Frame is the screen split for the schematic view. Rendering and mouse
// hit-testing both read it.
type Frame struct {
	Header   components.Rect
	Menu     components.Rect
	Toolbar  components.Rect
	Sidebar  components.Rect
	Canvas   components.Rect
	Terminal components.Rect
	Status   components.Rect
}

// ComputeFrame splits the screen for the current state.
func ComputeFrame(m *model.Model) Frame {
	w, h := m.Width, m.Height
	f := Frame{
		Header:  components.Rect{X: 0, Y: headerRow, W: w, H: 1},
		Menu:    components.Rect{X: 0, Y: menuRow, W: w, H: 1},
		Toolbar: components.Rect{X: 0, Y: toolbarRow, W: w, H: 1},
		Status:  components.Rect{X: 0, Y: h - statusRows, W: w, H: statusRows},
	}

	body := components.NewLayout(w, components.NewLayout(w, h).CalculateContentArea(topRows, statusRows))

	termWant := design.TerminalCollapsedRows
	if m.State.TerminalOpen() {
		termWant = design.TerminalExpandedHeight
	}
	workH, termH := body.SplitBottom(termWant)
	f.Terminal = components.Rect{X: 0, Y: topRows + workH, W: w, H: termH}

	sideWant := 0
	if m.State.SidebarOpen {
		sideWant = design.SidebarWidth
	}
	sideW, canvasW := components.NewLayout(w, workH).SplitLeft(sideWant)
	f.Sidebar = components.Rect{X: 0, Y: topRows, W: sideW, H: workH}
	f.Canvas = components.Rect{X: sideW, Y: topRows, W: canvasW, H: workH}
	return f
}

// CanvasPixelSize is the canvas area in sheet pixels.
func (f Frame) CanvasPixelSize() (float64, float64) {
	return float64(f.Canvas.W * CellW), float64(f.Canvas.H * CellH)
}

// CellPoint maps a canvas cell to sheet pixels for the viewport.
func CellPoint(col, row int) viewport.Point {
	return pointAt(float64(col), float64(row))
}

func pointAt(col, row float64) viewport.Point {
	return viewport.Point{X: col * CellW, Y: row * CellH}
}
