// Package theme provides the semantic colour palettes of the orgsetup UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme is a named set of semantic colours.
// Every colour is adaptive for light and dark terminals.
type Theme struct {
	Name string

	Primary lipgloss.AdaptiveColor // focused borders, primary button
	Accent  lipgloss.AdaptiveColor // headings, selected emoji

	Error   lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor

	Text      lipgloss.AdaptiveColor
	TextMuted lipgloss.AdaptiveColor

	Background          lipgloss.AdaptiveColor
	BackgroundSecondary lipgloss.AdaptiveColor // toasts, loading overlay

	BorderNormal  lipgloss.AdaptiveColor
	BorderFocused lipgloss.AdaptiveColor

	// Glamour is the glamour standard style used for markdown on this theme.
	Glamour string
}
