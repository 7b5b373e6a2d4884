package theme

import "github.com/charmbracelet/lipgloss"

func init() {
	Register(Theme{
		Name:                "tokyonight",
		Primary:             lipgloss.AdaptiveColor{Dark: "#82aaff", Light: "#2e7de9"},
		Accent:              lipgloss.AdaptiveColor{Dark: "#ff966c", Light: "#b15c00"},
		Error:               lipgloss.AdaptiveColor{Dark: "#ff757f", Light: "#f52a65"},
		Warning:             lipgloss.AdaptiveColor{Dark: "#ffc777", Light: "#8c6c3e"},
		Success:             lipgloss.AdaptiveColor{Dark: "#c3e88d", Light: "#587539"},
		Text:                lipgloss.AdaptiveColor{Dark: "#c8d3f5", Light: "#3760bf"},
		TextMuted:           lipgloss.AdaptiveColor{Dark: "#636da6", Light: "#848cb5"},
		Background:          lipgloss.AdaptiveColor{Dark: "#222436", Light: "#e1e2e7"},
		BackgroundSecondary: lipgloss.AdaptiveColor{Dark: "#2f334d", Light: "#c8c9ce"},
		BorderNormal:        lipgloss.AdaptiveColor{Dark: "#3b4261", Light: "#a8aecb"},
		BorderFocused:       lipgloss.AdaptiveColor{Dark: "#82aaff", Light: "#2e7de9"},
		Glamour:             "tokyo-night",
	})
}
