package components

import (
	"strings"

	"dxfolio/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Rect is a screen area in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Layout helps organize the screen into sections
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a new layout manager
func NewLayout(width, height int) *Layout {
	return &Layout{
		Width:  width,
		Height: height,
	}
}

// SplitLeft carves a fixed-width column off the left edge. The remaining
// width never drops below MinPanelWidth while the screen allows it.
func (l *Layout) SplitLeft(want int) (leftWidth, rightWidth int) {
	if want <= 0 {
		return 0, l.Width
	}
	leftWidth = want
	if l.Width-leftWidth < design.MinPanelWidth {
		leftWidth = l.Width - design.MinPanelWidth
	}
	if leftWidth < 0 {
		leftWidth = 0
	}
	return leftWidth, l.Width - leftWidth
}

// SplitBottom carves a fixed-height band off the bottom edge, leaving at
// least MinPanelHeight rows above it while the screen allows it.
func (l *Layout) SplitBottom(want int) (topHeight, bottomHeight int) {
	if want <= 0 {
		return l.Height, 0
	}
	bottomHeight = want
	if l.Height-bottomHeight < design.MinPanelHeight {
		bottomHeight = l.Height - design.MinPanelHeight
	}
	if bottomHeight < 0 {
		bottomHeight = 0
	}
	return l.Height - bottomHeight, bottomHeight
}

// CalculateContentArea returns the available content area after accounting
// for rows at the top and bottom of the screen.
func (l *Layout) CalculateContentArea(topRows, bottomRows int) int {
	contentHeight := l.Height - topRows - bottomRows
	if contentHeight < 0 {
		contentHeight = 0
	}
	return contentHeight
}

// JoinHorizontal joins components horizontally with optional gap
func JoinHorizontal(gap int, components ...string) string {
	if gap > 0 {
		spacer := strings.Repeat(" ", gap)
		parts := make([]string, 0, len(components)*2-1)
		for i, comp := range components {
			if i > 0 {
				parts = append(parts, spacer)
			}
			parts = append(parts, comp)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, components...)
}

// JoinVertical joins components vertically
func JoinVertical(components ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, components...)
}

// CenterContent centers content within the given dimensions
func CenterContent(width, height int, content string) string {
	return design.CenterVertical(height, design.CenterHorizontal(width, content))
}
