package components

import (
	"strings"

	"dxfolio/internal/tui/design"
	"dxfolio/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// Header is the application title bar.
type Header struct {
	Title        string
	Subtitle     string
	ShowSpinner  bool
	SpinnerView  string
	Width        int
	RightContent string
}

// NewHeader creates a new header
func NewHeader(title string) *Header {
	return &Header{
		Title: title,
		Width: 80,
	}
}

// WithSubtitle adds a subtitle
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.Subtitle = subtitle
	return h
}

// WithSpinner shows a spinner in the header
func (h *Header) WithSpinner(spinnerView string) *Header {
	h.ShowSpinner = true
	h.SpinnerView = spinnerView
	return h
}

// WithRightContent adds content to the right side
func (h *Header) WithRightContent(content string) *Header {
	h.RightContent = content
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header
func (h *Header) Render() string {
	var leftParts []string
	leftParts = append(leftParts, design.TextAccentStyle.Render("▣"), h.Title)
	if h.Subtitle != "" {
		leftParts = append(leftParts, design.DimStyle.Render("|"), design.TextSecondaryStyle.Render(h.Subtitle))
	}
	leftContent := strings.Join(leftParts, " ")

	available := h.Width - design.HeaderStyle.GetHorizontalPadding()
	right := h.RightContent
	if h.ShowSpinner && h.SpinnerView != "" {
		right = strings.TrimSpace(h.SpinnerView + " " + right)
	}

	content := leftContent
	if right != "" {
		leftWidth := lipgloss.Width(leftContent)
		rightWidth := lipgloss.Width(right)
		if leftWidth+rightWidth+2 <= available {
			content = leftContent + strings.Repeat(" ", available-leftWidth-rightWidth) + right
		}
	}
	if lipgloss.Width(content) > available {
		content = utils.TruncateString(h.Title, max(available, 0))
	}

	return design.HeaderStyle.
		Width(h.Width).
		MaxWidth(h.Width).
		Render(content)
}
