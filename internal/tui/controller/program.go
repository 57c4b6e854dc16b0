package controller

import (
	"dxfolio/internal/tui/design"
	"dxfolio/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for an interactive session. The
// theme is applied before the first frame.
func NewProgram(cfg model.TUIConfig) *tea.Program {
	design.Initialize(!cfg.LightMode)
	m := model.InitialModel(cfg)
	return tea.NewProgram(NewAppModel(m), tea.WithAltScreen(), tea.WithMouseCellMotion())
}
