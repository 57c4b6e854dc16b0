package components

import (
	"strings"

	"dxfolio/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const groupSeparator = " │ "

// BarItem is one clickable label of a menu bar or tool bar.
type BarItem struct {
	ID     string
	Label  string
	Active bool
	// Group changes between neighbours insert a separator.
	Group int
}

// Hit maps a screen area to the item drawn there.
type Hit struct {
	ID   string
	Rect Rect
}

// ItemBar renders a single row of items. Layout and Render agree on every
// cell, so hits computed from Layout match what is drawn.
type ItemBar struct {
	Items       []BarItem
	Width       int
	X, Y        int
	Style       lipgloss.Style
	ItemStyle   lipgloss.Style
	ActiveStyle lipgloss.Style
}

// NewItemBar creates a bar at screen row y.
func NewItemBar(y, width int, items ...BarItem) *ItemBar {
	return &ItemBar{
		Items:       items,
		Width:       width,
		Y:           y,
		Style:       design.MenuBarStyle,
		ItemStyle:   design.MenuItemStyle,
		ActiveStyle: design.ToolButtonActiveStyle.Padding(0, design.SpaceXS),
	}
}

// WithStyles overrides the bar and item styles.
func (b *ItemBar) WithStyles(bar, item, active lipgloss.Style) *ItemBar {
	b.Style = bar
	b.ItemStyle = item
	b.ActiveStyle = active
	return b
}

// Layout returns the area of every item that fits on the row.
func (b *ItemBar) Layout() []Hit {
	hits := make([]Hit, 0, len(b.Items))
	x := b.X
	for i, item := range b.Items {
		if i > 0 && item.Group != b.Items[i-1].Group {
			x += runewidth.StringWidth(groupSeparator)
		}
		w := runewidth.StringWidth(item.Label) + 2
		if x+w > b.X+b.Width {
			break
		}
		hits = append(hits, Hit{ID: item.ID, Rect: Rect{X: x, Y: b.Y, W: w, H: 1}})
		x += w
	}
	return hits
}

// HitTest returns the item under the cell (x, y).
func (b *ItemBar) HitTest(x, y int) (string, bool) {
	for _, h := range b.Layout() {
		if h.Rect.Contains(x, y) {
			return h.ID, true
		}
	}
	return "", false
}

// Render returns the styled bar.
func (b *ItemBar) Render() string {
	hits := b.Layout()
	var sb strings.Builder
	for i := range hits {
		item := b.Items[i]
		if i > 0 && item.Group != b.Items[i-1].Group {
			sb.WriteString(design.DimStyle.Render(groupSeparator))
		}
		style := b.ItemStyle
		if item.Active {
			style = b.ActiveStyle
		}
		sb.WriteString(style.Render(item.Label))
	}
	return b.Style.
		Width(b.Width).
		MaxWidth(b.Width).
		Render(sb.String())
}
