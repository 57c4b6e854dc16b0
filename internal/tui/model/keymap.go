package model

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	Left           key.Binding
	Right          key.Binding
	Tab            key.Binding
	Enter          key.Binding
	Esc            key.Binding
	Quit           key.Binding
	Help           key.Binding
	Command        key.Binding
	Filter         key.Binding
	ToggleSidebar  key.Binding
	ToggleTerminal key.Binding
	SelectTool     key.Binding
	PanTool        key.Binding
	ZoomIn         key.Binding
	ZoomOut        key.Binding
	Fit            key.Binding
	NextEntity     key.Binding
	PrevEntity     key.Binding
	SaveResume     key.Binding
	Print          key.Binding
	Undo           key.Binding
	Redo           key.Binding
	Settings       key.Binding
	BOM            key.Binding
	CopyLogs       key.Binding
	ToggleLog      key.Binding
	// Menus holds F1..F9, one per menu bar entry.
	Menus []key.Binding
}

// MenuNames are the menu bar entries, in display order.
var MenuNames = []string{"File", "Edit", "View", "Project", "Place", "Simulation", "Tools", "Window", "Help"}

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	menus := make([]key.Binding, len(MenuNames))
	for i, name := range MenuNames {
		k := "f" + string(rune('1'+i))
		menus[i] = key.NewBinding(
			key.WithKeys(k),
			key.WithHelp("F"+string(rune('1'+i)), name),
		)
	}

	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "pan left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "pan right"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open/run"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command line"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter files"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle explorer"),
		),
		ToggleTerminal: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle terminal"),
		),
		SelectTool: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "select tool"),
		),
		PanTool: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pan tool"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "zoom out"),
		),
		Fit: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fit sheet"),
		),
		NextEntity: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next component"),
		),
		PrevEntity: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "previous component"),
		),
		SaveResume: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save resume"),
		),
		Print: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "print"),
		),
		Undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "redo"),
		),
		Settings: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",", "settings"),
		),
		BOM: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "bill of materials"),
		),
		CopyLogs: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy logs"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		Menus: menus,
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Command, k.ToggleSidebar, k.ToggleTerminal, k.Fit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Tab, k.Enter, k.Esc},
		{k.Command, k.Filter, k.ToggleSidebar, k.ToggleTerminal, k.NextEntity, k.PrevEntity},
		{k.SelectTool, k.PanTool, k.ZoomIn, k.ZoomOut, k.Fit},
		{k.SaveResume, k.Print, k.Undo, k.Redo, k.Settings, k.BOM},
		k.Menus,
		{k.CopyLogs, k.ToggleLog, k.Help, k.Quit},
	}
}
