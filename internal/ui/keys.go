package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts for the application.
// Each binding includes the actual keys and help text for display.
type KeyMap struct {
	// Form
	Submit    key.Binding
	Enter     key.Binding
	Tab       key.Binding
	ShiftTab  key.Binding
	PrevEmoji key.Binding
	NextEmoji key.Binding
	Back      key.Binding

	// Screens
	NewOrg     key.Binding
	Copy       key.Binding
	CycleTheme key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "Create now"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("⏎", "Create now"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("⇥", "Next field"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("⇧⇥", "Previous field"),
		),
		// Left/Right share help text (displayed as single row)
		PrevEmoji: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←→", "Pick emoji"),
		),
		NextEmoji: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("←→", "Pick emoji"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back"),
		),
		NewOrg: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "New organization"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Copy URL"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("^c", "Quit"),
		),
	}
}
