package components

import (
	"strings"

	"dxfolio/internal/tui/design"
	"dxfolio/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// PanelType defines the visual style of a panel
type PanelType int

const (
	PanelTypeDefault PanelType = iota
	PanelTypeError
	PanelTypeActive
)

// String returns the panel type name.
func (pt PanelType) String() string {
	switch pt {
	case PanelTypeDefault:
		return "Default"
	case PanelTypeError:
		return "Error"
	case PanelTypeActive:
		return "Active"
	default:
		return "Unknown"
	}
}

// Panel is a bordered box with a one-line title. Width and Height are the
// outer size including the border.
type Panel struct {
	Title   string
	Hint    string
	Content string
	Width   int
	Height  int
	Focused bool
	Type    PanelType
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title:  title,
		Width:  design.MinPanelWidth,
		Height: design.MinPanelHeight,
		Type:   PanelTypeDefault,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithHint sets dim text shown right-aligned on the title line.
func (p *Panel) WithHint(hint string) *Panel {
	p.Hint = hint
	return p
}

// WithDimensions sets the panel dimensions
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// WithType sets the panel type for styling
func (p *Panel) WithType(panelType PanelType) *Panel {
	p.Type = panelType
	return p
}

// SetFocused updates the focus state
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// ContentOrigin returns the offset of the first content cell from the
// panel's top-left corner.
func (p *Panel) ContentOrigin() (x, y int) {
	style := p.getStyle()
	x = style.GetBorderLeftSize() + style.GetPaddingLeft()
	y = style.GetBorderTopSize() + style.GetPaddingTop()
	if p.Title != "" {
		y++
	}
	return x, y
}

// InnerSize returns the content area size below the title line.
func (p *Panel) InnerSize() (width, height int) {
	style := p.getStyle()
	width = p.Width - style.GetHorizontalFrameSize()
	height = p.Height - style.GetVerticalFrameSize()
	if p.Title != "" {
		height--
	}
	return max(width, 0), max(height, 0)
}

// Render returns the styled panel
func (p *Panel) Render() string {
	if p.Width < design.MinPanelWidth {
		p.Width = design.MinPanelWidth
	}
	if p.Height < design.MinPanelHeight {
		p.Height = design.MinPanelHeight
	}

	style := p.getStyle()

	innerWidth := p.Width - style.GetHorizontalFrameSize()
	innerHeight := p.Height - style.GetVerticalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	var lines []string
	if p.Title != "" {
		lines = append(lines, p.renderTitle(innerWidth))
	}

	if p.Content != "" {
		contentLines := strings.Split(p.Content, "\n")
		available := innerHeight - len(lines)
		if available > 0 {
			if len(contentLines) > available {
				contentLines = contentLines[len(contentLines)-available:]
			}
			for _, line := range contentLines {
				if lipgloss.Width(line) > innerWidth {
					line = utils.TruncateANSI(line, innerWidth)
				}
				lines = append(lines, line)
			}
		}
	}

	for len(lines) < innerHeight {
		lines = append(lines, "")
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	// lipgloss sizes exclude the border.
	return style.
		Width(p.Width - style.GetHorizontalBorderSize()).
		Height(p.Height - style.GetVerticalBorderSize()).
		MaxHeight(p.Height).
		Render(strings.Join(lines, "\n"))
}

func (p *Panel) getStyle() lipgloss.Style {
	style := design.PanelStyle
	if p.Focused {
		style = design.PanelFocusedStyle
	}
	switch p.Type {
	case PanelTypeError:
		return style.BorderForeground(design.ColorError)
	case PanelTypeActive:
		return style.BorderForeground(design.ColorAccent)
	default:
		return style
	}
}

func (p *Panel) renderTitle(width int) string {
	if p.Title == "" {
		return ""
	}
	titleStyle := design.PanelTitleStyle
	if !p.Focused {
		titleStyle = design.TextSecondaryStyle.Bold(true)
	}
	title := titleStyle.Render(utils.Ellipsize(p.Title, max(width, 1)))

	if p.Hint != "" {
		gap := width - lipgloss.Width(title) - lipgloss.Width(p.Hint)
		if gap >= 2 {
			title += strings.Repeat(" ", gap) + design.DimStyle.Render(p.Hint)
		}
	}
	return title
}
