package view

import (
	"strings"

	"dxfolio/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type styleKey uint8

const (
	styleBlank styleKey = iota
	styleGrid
	styleRegion
	styleWire
	styleJunction
	styleTitleBlock
	stylePart
	styleSelected
	styleLabel
	styleOverlay
	styleOverlayTitle
)

// cell is one character of the canvas. A zero rune marks the second half of
// a wide rune.
type cell struct {
	r     rune
	style styleKey
	color string
}

// raster is a fixed-size grid of cells that sheet layers are painted onto,
// back to front.
type raster struct {
	w, h  int
	cells []cell
}

func newRaster(w, h int) *raster {
	w, h = max(w, 0), max(h, 0)
	r := &raster{w: w, h: h, cells: make([]cell, w*h)}
	for i := range r.cells {
		r.cells[i] = cell{r: ' '}
	}
	return r
}

func (r *raster) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < r.w && y < r.h
}

func (r *raster) at(x, y int) *cell {
	return &r.cells[y*r.w+x]
}

func (r *raster) set(x, y int, ch rune, st styleKey) {
	r.setColor(x, y, ch, st, "")
}

func (r *raster) setColor(x, y int, ch rune, st styleKey, color string) {
	if !r.in(x, y) {
		return
	}
	*r.at(x, y) = cell{r: ch, style: st, color: color}
}

// text writes s from (x, y) and returns the column after the last rune.
func (r *raster) text(x, y int, s string, st styleKey) int {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		r.set(x, y, ch, st)
		if w == 2 {
			r.set(x+1, y, 0, st)
		}
		x += w
	}
	return x
}

// box draws a rectangle outline with the given edge runes.
func (r *raster) box(x0, y0, x1, y1 int, horiz, vert rune, st styleKey) {
	for x := x0 + 1; x < x1; x++ {
		r.set(x, y0, horiz, st)
		r.set(x, y1, horiz, st)
	}
	for y := y0 + 1; y < y1; y++ {
		r.set(x0, y, vert, st)
		r.set(x1, y, vert, st)
	}
	r.set(x0, y0, '┌', st)
	r.set(x1, y0, '┐', st)
	r.set(x0, y1, '└', st)
	r.set(x1, y1, '┘', st)
}

// Plain returns the raster as text without styling. Trailing blanks are
// trimmed from each row.
func (r *raster) Plain() string {
	var sb strings.Builder
	for y := 0; y < r.h; y++ {
		var row strings.Builder
		for x := 0; x < r.w; x++ {
			if c := r.at(x, y); c.r != 0 {
				row.WriteRune(c.r)
			}
		}
		sb.WriteString(strings.TrimRight(row.String(), " "))
		if y < r.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Render returns the raster with every run of equally styled cells wrapped
// in one lipgloss style.
func (r *raster) Render() string {
	styles := rasterStyles()
	var sb strings.Builder
	for y := 0; y < r.h; y++ {
		var run strings.Builder
		runStyle := styleBlank
		runColor := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			st := styles[runStyle]
			if runColor != "" {
				st = st.Foreground(lipgloss.Color(runColor))
			}
			sb.WriteString(st.Render(run.String()))
			run.Reset()
		}
		for x := 0; x < r.w; x++ {
			c := r.at(x, y)
			if c.r == 0 {
				continue
			}
			if c.style != runStyle || c.color != runColor {
				flush()
				runStyle, runColor = c.style, c.color
			}
			run.WriteRune(c.r)
		}
		flush()
		if y < r.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func rasterStyles() map[styleKey]lipgloss.Style {
	bg := design.ColorCanvas
	return map[styleKey]lipgloss.Style{
		styleBlank:        design.CanvasStyle,
		styleGrid:         design.GridStyle.Background(bg),
		styleRegion:       design.RegionStyle.Background(bg),
		styleWire:         design.WireStyle.Background(bg),
		styleJunction:     design.JunctionStyle.Background(bg),
		styleTitleBlock:   design.TextSecondaryStyle.Background(bg),
		stylePart:         design.PartStyle.Background(bg),
		styleSelected:     design.PartSelectedStyle.Background(bg),
		styleLabel:        design.LabelStyle.Background(bg),
		styleOverlay:      design.SheetOverlayStyle,
		styleOverlayTitle: design.SheetOverlayStyle.Bold(true),
	}
}
