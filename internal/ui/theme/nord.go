package theme

import "github.com/charmbracelet/lipgloss"

// Nord color palette
// https://www.nordtheme.com/docs/colors-and-palettes
var nord = struct {
	Nord0  string // Polar Night
	Nord1  string
	Nord2  string
	Nord3  string
	Nord4  string // Snow Storm
	Nord5  string
	Nord6  string
	Nord8  string // Frost
	Nord10 string
	Nord11 string // Aurora
	Nord12 string
	Nord13 string
	Nord14 string
}{
	Nord0:  "#2E3440",
	Nord1:  "#3B4252",
	Nord2:  "#434C5E",
	Nord3:  "#4C566A",
	Nord4:  "#D8DEE9",
	Nord5:  "#E5E9F0",
	Nord6:  "#ECEFF4",
	Nord8:  "#88C0D0",
	Nord10: "#5E81AC",
	Nord11: "#BF616A",
	Nord12: "#D08770",
	Nord13: "#EBCB8B",
	Nord14: "#A3BE8C",
}

func init() {
	Register(Theme{
		Name:                "nord",
		Primary:             lipgloss.AdaptiveColor{Light: nord.Nord10, Dark: nord.Nord8},
		Accent:              lipgloss.AdaptiveColor{Light: nord.Nord12, Dark: nord.Nord13},
		Error:               lipgloss.AdaptiveColor{Light: nord.Nord11, Dark: nord.Nord11},
		Warning:             lipgloss.AdaptiveColor{Light: nord.Nord12, Dark: nord.Nord12},
		Success:             lipgloss.AdaptiveColor{Light: nord.Nord14, Dark: nord.Nord14},
		Text:                lipgloss.AdaptiveColor{Light: nord.Nord0, Dark: nord.Nord6},
		TextMuted:           lipgloss.AdaptiveColor{Light: nord.Nord1, Dark: "#8B95A7"},
		Background:          lipgloss.AdaptiveColor{Light: nord.Nord6, Dark: nord.Nord0},
		BackgroundSecondary: lipgloss.AdaptiveColor{Light: nord.Nord5, Dark: nord.Nord1},
		BorderNormal:        lipgloss.AdaptiveColor{Light: nord.Nord4, Dark: nord.Nord2},
		BorderFocused:       lipgloss.AdaptiveColor{Light: nord.Nord3, Dark: nord.Nord8},
		Glamour:             "dark",
	})
}
