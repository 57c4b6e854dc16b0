package controller

import (
	"dxfolio/internal/tui/model"
	"dxfolio/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// handleWindowSizeMsg updates the model with the new terminal dimensions.
// The first size ends ModeInitializing and picks the narrow or wide opening
// layout.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height

	if m.CurrentAppMode == model.ModeInitializing {
		narrow := m.NarrowWidth > 0 && msg.Width < m.NarrowWidth
		m.State = m.Machine.Initial(narrow, m.InitialLight)
		m.CurrentAppMode = model.ModeMain
		LogDebug(m, controllerSubsystem, "Initial layout %dx%d narrow=%t", msg.Width, msg.Height, narrow)
	}
	return m, nil
}

// syncViewports sizes the scrollable areas to the current frame and refreshes
// their content when it changed.
func syncViewports(m *model.Model) {
	if m.Width <= 0 || m.Height <= 0 {
		return
	}
	f := view.ComputeFrame(m)

	tw, th := view.TerminalViewportSize(m, f)
	m.TerminalViewport.Width = tw
	m.TerminalViewport.Height = th
	if content := view.PrepareTerminalContent(m.State.Terminal.Lines); content != m.TerminalContent {
		m.TerminalViewport.SetContent(content)
		m.TerminalViewport.GotoBottom()
		m.TerminalContent = content
	}
	promptW := lipgloss.Width(m.Machine.Env().Host) + len("user@:~$ ")
	m.CommandInput.Width = max(tw-promptW-1, 1)
	m.FilterInput.Width = max(f.Sidebar.W-6, 1)

	if e, ok := m.State.Selected(m.Catalog()); ok && m.InDocumentation() {
		dw, dh := view.DocViewportSize(m)
		m.DocViewport.Width = dw
		m.DocViewport.Height = dh
		m.DocViewport.SetContent(view.DocContent(m, e, dw))
		if e.ID != m.DocEntityID {
			m.DocViewport.GotoTop()
			m.DocEntityID = e.ID
		}
	} else {
		m.DocEntityID = ""
	}

	lw, lh := view.LogOverlaySize(m)
	m.LogViewport.Width = lw
	m.LogViewport.Height = lh
	if m.ActivityLogDirty || lw != m.LogViewportLastWidth {
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))
		m.LogViewport.GotoBottom()
		m.ActivityLogDirty = false
		m.LogViewportLastWidth = lw
	}
}
