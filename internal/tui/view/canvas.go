package view

import (
	"fmt"
	"math"
	"strings"

	"dxfolio/internal/catalog"
	"dxfolio/internal/session"
	"dxfolio/internal/tui/components"
	"dxfolio/internal/tui/utils"
	"dxfolio/internal/viewport"

	"github.com/mattn/go-runewidth"
)

// Glyph art per symbol tag, centred on the part's placement.
var glyphs = map[catalog.Type][]string{
	catalog.TypeIC:        {"┌─┴─┴─┐", "┤     ├", "└─┬─┬─┘"},
	catalog.TypeOpAmp:     {"|\\  ", "|  >─", "|/  "},
	catalog.TypeConnector: {"┌─┐", "┤o│", "└─┘"},
	catalog.TypeResistor:  {"─/\\/\\/─"},
	catalog.TypeCapacitor: {"─┤ ├─"},
	catalog.TypeVCC:       {"─┬─", " │ "},
	catalog.TypeGND:       {" │ ", "═╧═", " ─ "},
	catalog.TypeRelay:     {"┌──┐", "│/ │", "└──┘"},
	catalog.TypeDiode:     {"─|>|─"},
}

// Titles appear under reference designators from this scale up.
const (
	titleScale    = 0.6
	maxTitleWidth = 20
	minGridCells  = 2
)

var legendLines = []string{
	"SCHEMATIC LEGEND",
	"▣ IC (Digital/System)",
	"▷ OpAmp (Analog)",
	"▬ Connector/IO",
	"━ Signal Bus",
	"─ Wire Trace",
}

func glyphSize(t catalog.Type) (int, int) {
	art := glyphs[t]
	w := 0
	for _, line := range art {
		w = max(w, runewidth.StringWidth(line))
	}
	return w, len(art)
}

// toCell maps a sheet point to a canvas cell.
func toCell(vp viewport.Controller, x, y float64) (int, int) {
	p := vp.ToScreen(x, y)
	return int(math.Floor(p.X / CellW)), int(math.Floor(p.Y / CellH))
}

// glyphOrigin returns the top-left cell of a symbol placed at (x, y).
func glyphOrigin(vp viewport.Controller, t catalog.Type, x, y float64) (int, int) {
	cx, cy := toCell(vp, x, y)
	gw, gh := glyphSize(t)
	return cx - gw/2, cy - gh/2
}

// entityLabels returns the text rows drawn under an entity.
func entityLabels(e catalog.Entity, scale float64) []string {
	labels := []string{e.RefDes}
	if scale >= titleScale {
		labels = append(labels, utils.Ellipsize(e.Title, maxTitleWidth))
	}
	return labels
}

// entityBox is the clickable area of an entity in canvas cells: its glyph and
// the labels under it.
func entityBox(e catalog.Entity, vp viewport.Controller) components.Rect {
	x0, y0 := glyphOrigin(vp, e.Type, e.X, e.Y)
	gw, gh := glyphSize(e.Type)
	cx := x0 + gw/2
	box := components.Rect{X: x0, Y: y0, W: gw, H: gh}
	for i, label := range entityLabels(e, vp.Scale) {
		lw := runewidth.StringWidth(label)
		lx := cx - lw/2
		if lx < box.X {
			box.W += box.X - lx
			box.X = lx
		}
		if lx+lw > box.X+box.W {
			box.W = lx + lw - box.X
		}
		box.H = gh + i + 1
	}
	return box
}

// PartAt returns the entity drawn at canvas cell (col, row). Later entities
// are drawn on top and win.
func PartAt(cat *catalog.Catalog, vp viewport.Controller, col, row int) (string, bool) {
	for i := len(cat.Entities) - 1; i >= 0; i-- {
		e := cat.Entities[i]
		if entityBox(e, vp).Contains(col, row) {
			return e.ID, true
		}
	}
	return "", false
}

// drawSheet paints every layer of the sheet for state s into a w x h raster.
func drawSheet(cat *catalog.Catalog, s session.State, w, h int) *raster {
	r := newRaster(w, h)
	vp := s.Viewport

	drawGrid(r, vp)
	for _, region := range cat.Regions {
		drawRegion(r, vp, region)
	}
	for _, wire := range cat.Wires {
		drawWire(r, vp, wire)
	}
	for _, j := range cat.Junctions {
		x, y := toCell(vp, j.X, j.Y)
		r.set(x, y, '●', styleJunction)
	}
	drawTitleBlock(r, vp, cat.Sheet.TitleBlock)
	for _, p := range cat.Passives {
		drawPassive(r, vp, p)
	}
	for _, e := range cat.Entities {
		drawEntity(r, vp, e, e.ID == s.SelectedID)
	}
	drawSheetInfo(r, cat, vp)
	drawLegend(r)
	return r
}

func drawGrid(r *raster, vp viewport.Controller) {
	step := 50.0
	for step*vp.Scale < minGridCells*CellW {
		step *= 2
	}
	wx0, wy0 := vp.ToWorld(viewport.Point{})
	wx1, wy1 := vp.ToWorld(viewport.Point{X: float64(r.w * CellW), Y: float64(r.h * CellH)})
	for gx := math.Ceil(wx0/step) * step; gx <= wx1; gx += step {
		for gy := math.Ceil(wy0/step) * step; gy <= wy1; gy += step {
			x, y := toCell(vp, gx, gy)
			r.set(x, y, '·', styleGrid)
		}
	}
}

func drawRegion(r *raster, vp viewport.Controller, region catalog.Region) {
	x0, y0 := toCell(vp, region.X, region.Y)
	x1, y1 := toCell(vp, region.X+region.W, region.Y+region.H)
	if x1-x0 < 2 || y1-y0 < 2 {
		return
	}
	r.box(x0, y0, x1, y1, '┄', '┆', styleRegion)
	if x1-x0 > 4 {
		r.text(x0+2, y0, utils.TruncateString(" "+region.Label+" ", x1-x0-3), styleRegion)
	}
}

type direction int

const (
	dirNone direction = iota
	dirLeft
	dirRight
	dirUp
	dirDown
)

// towards returns the dominant direction from cell a to cell b.
func towards(ax, ay, bx, by int) direction {
	dx, dy := bx-ax, by-ay
	switch {
	case dx == 0 && dy == 0:
		return dirNone
	case abs(dx) >= abs(dy) && dx < 0:
		return dirLeft
	case abs(dx) >= abs(dy):
		return dirRight
	case dy < 0:
		return dirUp
	default:
		return dirDown
	}
}

func cornerRune(a, b direction) rune {
	has := func(d direction) bool { return a == d || b == d }
	switch {
	case has(dirLeft) && has(dirUp):
		return '┘'
	case has(dirLeft) && has(dirDown):
		return '┐'
	case has(dirRight) && has(dirUp):
		return '└'
	case has(dirRight) && has(dirDown):
		return '┌'
	case has(dirUp) || has(dirDown):
		return '│'
	default:
		return '─'
	}
}

func isWireRune(ch rune) bool {
	return strings.ContainsRune("─│┌┐└┘┼·", ch)
}

// wireCell sets one wire cell. Crossing an existing wire draws a cross.
func (r *raster) wireCell(x, y int, ch rune, color string) {
	if !r.in(x, y) {
		return
	}
	c := r.at(x, y)
	if c.style == styleWire && isWireRune(c.r) && c.r != ch &&
		(ch == '─' && c.r == '│' || ch == '│' && c.r == '─') {
		ch = '┼'
	}
	r.setColor(x, y, ch, styleWire, color)
}

func drawWire(r *raster, vp viewport.Controller, wire catalog.WirePath) {
	if len(wire.Points) < 2 {
		return
	}
	cells := make([][2]int, len(wire.Points))
	for i, p := range wire.Points {
		x, y := toCell(vp, p.X, p.Y)
		cells[i] = [2]int{x, y}
	}
	for i := 1; i < len(cells); i++ {
		drawSegment(r, cells[i-1], cells[i], wire.Color)
	}
	for i := 1; i < len(cells)-1; i++ {
		v := cells[i]
		a := towards(v[0], v[1], cells[i-1][0], cells[i-1][1])
		b := towards(v[0], v[1], cells[i+1][0], cells[i+1][1])
		if a == dirNone || b == dirNone {
			continue
		}
		r.setColor(v[0], v[1], cornerRune(a, b), styleWire, wire.Color)
	}
}

func drawSegment(r *raster, a, b [2]int, color string) {
	x0, y0, x1, y1 := a[0], a[1], b[0], b[1]
	switch {
	case y0 == y1:
		for x := min(x0, x1); x <= max(x0, x1); x++ {
			r.wireCell(x, y0, '─', color)
		}
	case x0 == x1:
		for y := min(y0, y1); y <= max(y0, y1); y++ {
			r.wireCell(x0, y, '│', color)
		}
	default:
		// Bresenham for the rare diagonal trace.
		dx, dy := abs(x1-x0), -abs(y1-y0)
		sx, sy := sign(x1-x0), sign(y1-y0)
		e := dx + dy
		for {
			r.wireCell(x0, y0, '·', color)
			if x0 == x1 && y0 == y1 {
				return
			}
			if e2 := 2 * e; e2 >= dy {
				e += dy
				x0 += sx
			} else {
				e += dx
				y0 += sy
			}
		}
	}
}

func drawTitleBlock(r *raster, vp viewport.Controller, tb catalog.TitleBlock) {
	if tb.W <= 0 || tb.H <= 0 {
		return
	}
	x0, y0 := toCell(vp, tb.X, tb.Y)
	x1, y1 := toCell(vp, tb.X+tb.W, tb.Y+tb.H)
	if x1-x0 < 2 || y1-y0 < 1 {
		return
	}
	for y := y0 + 1; y < y1; y++ {
		for x := x0 + 1; x < x1; x++ {
			r.set(x, y, ' ', styleTitleBlock)
		}
	}
	r.box(x0, y0, x1, y1, '─', '│', styleTitleBlock)
	for i, line := range tb.Lines {
		y := y0 + 1 + i
		if y >= y1 {
			break
		}
		r.text(x0+2, y, utils.TruncateString(line, x1-x0-3), styleTitleBlock)
	}
}

func drawGlyph(r *raster, x0, y0 int, t catalog.Type, st styleKey) {
	for i, line := range glyphs[t] {
		r.text(x0, y0+i, line, st)
	}
}

func drawPassive(r *raster, vp viewport.Controller, p catalog.Passive) {
	x0, y0 := glyphOrigin(vp, p.Type, p.X, p.Y)
	drawGlyph(r, x0, y0, p.Type, stylePart)
	gw, gh := glyphSize(p.Type)
	label := p.RefDes
	if p.Value != "" {
		label += " " + p.Value
	}
	r.text(x0+gw+1, y0+gh/2, label, styleLabel)
}

func drawEntity(r *raster, vp viewport.Controller, e catalog.Entity, selected bool) {
	glyphStyle, labelStyle := stylePart, styleLabel
	if selected {
		glyphStyle, labelStyle = styleSelected, styleSelected
	}
	x0, y0 := glyphOrigin(vp, e.Type, e.X, e.Y)
	drawGlyph(r, x0, y0, e.Type, glyphStyle)
	gw, gh := glyphSize(e.Type)
	cx := x0 + gw/2
	for i, label := range entityLabels(e, vp.Scale) {
		st := labelStyle
		if i > 0 && !selected {
			st = stylePart
		}
		r.text(cx-runewidth.StringWidth(label)/2, y0+gh+i, label, st)
	}
}

// overlayBox paints lines as a padded block with its top-left at (x, y).
// The first line uses the title style.
func overlayBox(r *raster, x, y int, lines []string) {
	w := 0
	for _, l := range lines {
		w = max(w, runewidth.StringWidth(l))
	}
	for i, l := range lines {
		st := styleOverlay
		if i == 0 {
			st = styleOverlayTitle
		}
		r.text(x, y+i, " "+runewidth.FillRight(l, w)+" ", st)
	}
}

func sheetInfoLines(cat *catalog.Catalog, vp viewport.Controller) []string {
	return []string{
		cat.Sheet.Name,
		fmt.Sprintf("SCALE: %d%%", vp.Percent()),
		fmt.Sprintf("X: %.0f Y: %.0f", -vp.Pan.X, -vp.Pan.Y),
	}
}

func drawSheetInfo(r *raster, cat *catalog.Catalog, vp viewport.Controller) {
	overlayBox(r, 1, 0, sheetInfoLines(cat, vp))
}

func drawLegend(r *raster) {
	w := 0
	for _, l := range legendLines {
		w = max(w, runewidth.StringWidth(l))
	}
	// The legend needs room beside the sheet info box.
	if r.w < 2*(w+2)+4 || r.h < len(legendLines)+2 {
		return
	}
	overlayBox(r, r.w-w-3, 0, legendLines)
}

// RenderCanvas draws the sheet for s into a w x h block.
func RenderCanvas(cat *catalog.Catalog, s session.State, w, h int) string {
	return drawSheet(cat, s, w, h).Render()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
