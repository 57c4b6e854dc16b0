package components

import (
	"strings"

	"dxfolio/internal/tui/design"
	"dxfolio/internal/tui/model"
	"dxfolio/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

const statusSegmentGap = 4

// StatusBar represents the bottom status bar
type StatusBar struct {
	Width       int
	Message     string
	MessageType model.MessageType
	Segments    []string
	RightText   string
	ShowMessage bool
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{
		Width: width,
	}
}

// WithMessage sets a transient message shown in place of the first segment.
func (s *StatusBar) WithMessage(message string, msgType model.MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	s.ShowMessage = message != ""
	return s
}

// WithSegments sets the left side fields.
func (s *StatusBar) WithSegments(segments ...string) *StatusBar {
	s.Segments = segments
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// ClearMessage removes the status message
func (s *StatusBar) ClearMessage() *StatusBar {
	s.ShowMessage = false
	s.Message = ""
	return s
}

// Render returns the styled status bar
func (s *StatusBar) Render() string {
	style := s.getStyle()
	available := s.Width - style.GetHorizontalPadding()

	segments := append([]string(nil), s.Segments...)
	if s.ShowMessage {
		if len(segments) == 0 {
			segments = []string{s.Message}
		} else {
			segments[0] = s.Message
		}
	}
	left := strings.Join(segments, strings.Repeat(" ", statusSegmentGap))

	var content string
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(s.RightText)
	switch {
	case s.RightText != "" && leftWidth+rightWidth+statusSegmentGap <= available:
		content = left + strings.Repeat(" ", available-leftWidth-rightWidth) + s.RightText
	default:
		content = utils.TruncateString(left, max(available, 0))
	}

	return style.
		Width(s.Width).
		MaxWidth(s.Width).
		Render(content)
}

func (s *StatusBar) getStyle() lipgloss.Style {
	if s.ShowMessage {
		switch s.MessageType {
		case model.StatusBarSuccess:
			return design.StatusBarSuccessStyle
		case model.StatusBarError:
			return design.StatusBarErrorStyle
		}
	}
	return design.StatusBarStyle
}
