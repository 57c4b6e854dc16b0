package viewport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitToContent(t *testing.T) {
	tests := []struct {
		name      string
		cw, ch    float64
		aw, ah    float64
		wantScale float64
		wantPan   Point
	}{
		{
			name: "content fits exactly", cw: 1000, ch: 500, aw: 1000, ah: 500,
			wantScale: 1, wantPan: Point{X: 20, Y: 20},
		},
		{
			name: "wide area centers horizontally", cw: 1000, ch: 500, aw: 2000, ah: 500,
			wantScale: 1, wantPan: Point{X: 500, Y: 20},
		},
		{
			name: "tiny area clamps to minimum", cw: 1000, ch: 1000, aw: 100, ah: 100,
			wantScale: 0.2, wantPan: Point{X: 20, Y: 20},
		},
		{
			name: "huge area clamps to maximum", cw: 100, ch: 100, aw: 1000, ah: 1000,
			wantScale: 1.5, wantPan: Point{X: 425, Y: 425},
		},
		{
			name: "degenerate content", cw: 0, ch: 100, aw: 1000, ah: 1000,
			wantScale: 1, wantPan: Point{X: 20, Y: 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scale, pan := FitToContent(tt.cw, tt.ch, tt.aw, tt.ah)
			assert.InDelta(t, tt.wantScale, scale, 1e-9)
			assert.InDelta(t, tt.wantPan.X, pan.X, 1e-9)
			assert.InDelta(t, tt.wantPan.Y, pan.Y, 1e-9)
		})
	}
}

func TestFit_Idempotent(t *testing.T) {
	c := New(0.8).PanBy(123, -45)
	once := c.Fit(1200, 820, 900, 700)
	twice := once.Fit(1200, 820, 900, 700)
	assert.Equal(t, once, twice)
}

func TestZoom_StaysInBounds(t *testing.T) {
	c := New(1)
	for i := 0; i < 200; i++ {
		c = c.Zoom(-1000)
		assert.LessOrEqual(t, c.Scale, MaxScale)
	}
	assert.Equal(t, MaxScale, c.Scale)

	for i := 0; i < 200; i++ {
		c = c.Zoom(1000)
		assert.GreaterOrEqual(t, c.Scale, MinScale)
	}
	assert.Equal(t, MinScale, c.Scale)

	for i := 0; i < 100; i++ {
		c = c.ZoomIn()
	}
	assert.Equal(t, MaxScale, c.Scale)
	for i := 0; i < 100; i++ {
		c = c.ZoomOut()
	}
	assert.Equal(t, MinScale, c.Scale)
}

func TestZoom_LeavesPanAndUsesExponent(t *testing.T) {
	c := New(1).PanBy(10, 20)
	z := c.Zoom(-100)
	assert.InDelta(t, math.Exp(0.2), z.Scale, 1e-9)
	assert.Equal(t, c.Pan, z.Pan)
}

func TestWheel(t *testing.T) {
	c := New(1)

	panned := c.Wheel(5, 30, false)
	assert.Equal(t, Point{X: -5, Y: -30}, panned.Pan)
	assert.Equal(t, 1.0, panned.Scale)

	zoomed := c.Wheel(5, -100, true)
	assert.Equal(t, Point{}, zoomed.Pan)
	assert.Greater(t, zoomed.Scale, 1.0)
}

func TestDragProtocol(t *testing.T) {
	c := New(1)

	// A press on a part with the select tool does not start a drag.
	c = c.BeginDrag(Point{X: 10, Y: 10}, false, false)
	assert.False(t, c.Dragging())
	c = c.ContinueDrag(Point{X: 50, Y: 50})
	assert.Equal(t, Point{}, c.Pan, "move while idle must not pan")

	c = c.BeginDrag(Point{X: 10, Y: 10}, false, true)
	assert.True(t, c.Dragging())
	c = c.ContinueDrag(Point{X: 30, Y: 15})
	c = c.ContinueDrag(Point{X: 40, Y: 5})
	assert.Equal(t, Point{X: 30, Y: -5}, c.Pan)

	c = c.EndDrag()
	assert.Equal(t, DragIdle, c.Drag)
	c = c.ContinueDrag(Point{X: 100, Y: 100})
	assert.Equal(t, Point{X: 30, Y: -5}, c.Pan)

	// The pan tool drags from anywhere.
	c = c.BeginDrag(Point{}, true, false)
	assert.True(t, c.Dragging())
}

func TestScreenWorldRoundTrip(t *testing.T) {
	c := New(0.5).PanBy(100, 40)
	p := c.ToScreen(300, 200)
	assert.Equal(t, Point{X: 250, Y: 140}, p)
	x, y := c.ToWorld(p)
	assert.InDelta(t, 300, x, 1e-9)
	assert.InDelta(t, 200, y, 1e-9)
	assert.Equal(t, 50, c.Percent())
}
