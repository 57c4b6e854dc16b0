// Package viewport implements the pan and zoom transform of the schematic
// canvas together with its pointer drag protocol.
//
// A Controller is a value. Every operation returns the updated controller and
// leaves the receiver untouched, so it can live inside an immutable session
// state.
package viewport

import "math"

const (
	// MinScale and MaxScale bound interactive zoom.
	MinScale = 0.1
	MaxScale = 5.0

	// FitMinScale and FitMaxScale bound fit-to-view.
	FitMinScale = 0.2
	FitMaxScale = 1.5

	// FitMargin is the minimum pan offset after fit-to-view on each axis.
	FitMargin = 20.0

	// WheelZoomDivisor controls how much one wheel delta unit zooms.
	WheelZoomDivisor = 500.0

	ZoomInFactor  = 1.2
	ZoomOutFactor = 0.8
)

// Point is a position in screen units.
type Point struct {
	X, Y float64
}

// DragState is the pointer drag protocol state.
type DragState int

const (
	DragIdle DragState = iota
	DragPanning
)

// String returns a human-readable representation of the drag state.
func (d DragState) String() string {
	switch d {
	case DragIdle:
		return "Idle"
	case DragPanning:
		return "Panning"
	default:
		return "Unknown"
	}
}

// Controller holds the canvas transform: screen = world*Scale + Pan.
type Controller struct {
	Scale float64
	Pan   Point
	Drag  DragState
	last  Point
}

// New returns an idle controller at the given scale and zero pan.
func New(scale float64) Controller {
	return Controller{Scale: clampScale(scale, MinScale, MaxScale)}
}

func clampScale(s, lo, hi float64) float64 {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 1
	}
	return math.Max(lo, math.Min(hi, s))
}

// FitToContent computes a scale and pan that center content of the given size
// inside the available area. Degenerate sizes yield scale 1 and the margin
// pan.
func FitToContent(contentW, contentH, availW, availH float64) (float64, Point) {
	if contentW <= 0 || contentH <= 0 || availW <= 0 || availH <= 0 {
		return 1, Point{X: FitMargin, Y: FitMargin}
	}
	scale := clampScale(math.Min(availW/contentW, availH/contentH), FitMinScale, FitMaxScale)
	pan := Point{
		X: math.Max(FitMargin, (availW-contentW*scale)/2),
		Y: math.Max(FitMargin, (availH-contentH*scale)/2),
	}
	return scale, pan
}

// Fit replaces the transform with the fit-to-view result.
func (c Controller) Fit(contentW, contentH, availW, availH float64) Controller {
	c.Scale, c.Pan = FitToContent(contentW, contentH, availW, availH)
	return c
}

// Zoom scales by exp(-deltaY/500) about the origin. Pan is left alone.
func (c Controller) Zoom(deltaY float64) Controller {
	c.Scale = clampScale(c.Scale*math.Exp(-deltaY/WheelZoomDivisor), MinScale, MaxScale)
	return c
}

// ZoomIn is the toolbar zoom-in step.
func (c Controller) ZoomIn() Controller {
	c.Scale = clampScale(c.Scale*ZoomInFactor, MinScale, MaxScale)
	return c
}

// ZoomOut is the toolbar zoom-out step.
func (c Controller) ZoomOut() Controller {
	c.Scale = clampScale(c.Scale*ZoomOutFactor, MinScale, MaxScale)
	return c
}

// PanBy moves the content by (dx, dy) screen units. Unbounded.
func (c Controller) PanBy(dx, dy float64) Controller {
	c.Pan.X += dx
	c.Pan.Y += dy
	return c
}

// Wheel applies a scroll gesture: with the zoom modifier held it zooms,
// otherwise it scrolls the sheet.
func (c Controller) Wheel(deltaX, deltaY float64, modifier bool) Controller {
	if modifier {
		return c.Zoom(deltaY)
	}
	return c.PanBy(-deltaX, -deltaY)
}

// BeginDrag starts a pan drag when the pan tool is active or the press landed
// on the canvas background. Presses on parts with the select tool are left to
// the caller.
func (c Controller) BeginDrag(pos Point, panTool, onBackground bool) Controller {
	if !panTool && !onBackground {
		return c
	}
	c.Drag = DragPanning
	c.last = pos
	return c
}

// ContinueDrag pans by the pointer delta since the previous position. It is a
// no-op while idle.
func (c Controller) ContinueDrag(pos Point) Controller {
	if c.Drag != DragPanning {
		return c
	}
	c = c.PanBy(pos.X-c.last.X, pos.Y-c.last.Y)
	c.last = pos
	return c
}

// EndDrag returns to idle.
func (c Controller) EndDrag() Controller {
	c.Drag = DragIdle
	c.last = Point{}
	return c
}

// Dragging reports whether a pan drag is in progress.
func (c Controller) Dragging() bool {
	return c.Drag == DragPanning
}

// ToScreen maps a world position to screen units.
func (c Controller) ToScreen(x, y float64) Point {
	return Point{X: x*c.Scale + c.Pan.X, Y: y*c.Scale + c.Pan.Y}
}

// ToWorld maps a screen position back to world units.
func (c Controller) ToWorld(p Point) (float64, float64) {
	return (p.X - c.Pan.X) / c.Scale, (p.Y - c.Pan.Y) / c.Scale
}

// Percent returns the scale as a whole percentage for display.
func (c Controller) Percent() int {
	return int(math.Round(c.Scale * 100))
}
