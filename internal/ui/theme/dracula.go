package theme

import "github.com/charmbracelet/lipgloss"

// Dracula color palette
// https://draculatheme.com/contribute
var dracula = struct {
	Background  string
	CurrentLine string
	Foreground  string
	Comment     string
	Green       string
	Orange      string
	Purple      string
	Red         string
	Yellow      string
}{
	Background:  "#282a36",
	CurrentLine: "#44475a",
	Foreground:  "#f8f8f2",
	Comment:     "#6272a4",
	Green:       "#50fa7b",
	Orange:      "#ffb86c",
	Purple:      "#bd93f9",
	Red:         "#ff5555",
	Yellow:      "#f1fa8c",
}

func init() {
	Register(Theme{
		Name:                "dracula",
		Primary:             lipgloss.AdaptiveColor{Light: "#7e57c2", Dark: dracula.Purple},
		Accent:              lipgloss.AdaptiveColor{Light: "#f9a825", Dark: dracula.Yellow},
		Error:               lipgloss.AdaptiveColor{Light: "#d32f2f", Dark: dracula.Red},
		Warning:             lipgloss.AdaptiveColor{Light: "#ef6c00", Dark: dracula.Orange},
		Success:             lipgloss.AdaptiveColor{Light: "#388e3c", Dark: dracula.Green},
		Text:                lipgloss.AdaptiveColor{Light: "#212121", Dark: dracula.Foreground},
		TextMuted:           lipgloss.AdaptiveColor{Light: "#757575", Dark: dracula.Comment},
		Background:          lipgloss.AdaptiveColor{Light: "#ffffff", Dark: dracula.Background},
		BackgroundSecondary: lipgloss.AdaptiveColor{Light: "#e0e0e0", Dark: dracula.CurrentLine},
		BorderNormal:        lipgloss.AdaptiveColor{Light: "#bdbdbd", Dark: dracula.Comment},
		BorderFocused:       lipgloss.AdaptiveColor{Light: "#7e57c2", Dark: dracula.Purple},
		Glamour:             "dracula",
	})
}
