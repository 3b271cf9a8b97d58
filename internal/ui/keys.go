package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// View switching
	ViewResults key.Binding
	ViewFilter  key.Binding
	ViewPinned  key.Binding
	ViewRecent  key.Binding
	ViewLogin   key.Binding

	// Listing actions
	OpenDetail     key.Binding
	TogglePin      key.Binding
	ToggleFavorite key.Binding
	Refresh        key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Forms
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back to results"),
		),

		ViewResults: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Results"),
		),
		ViewFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Filters"),
		),
		ViewPinned: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Pinned"),
		),
		ViewRecent: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Recent"),
		),
		ViewLogin: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Login"),
		),

		OpenDetail: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open listing"),
		),
		TogglePin: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "Pin/unpin"),
		),
		ToggleFavorite: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "Favorite/unfavorite"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "Re-run search"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "Down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Bottom"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Submit"),
		),
	}
}
