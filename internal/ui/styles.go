package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"orgsetup/internal/ui/theme"
)

func styleHeader() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Background).
		Background(theme.Current().Primary).
		Bold(true).
		Padding(0, 1)
}

func styleHeaderInfo() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Text).
		Padding(0, 1)
}

func styleLabel() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted).
		Bold(true)
}

func styleMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

func styleInput() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderNormal).
		Padding(0, 1)
}

func styleInputFocused() lipgloss.Style {
	return styleInput().BorderForeground(theme.Current().BorderFocused)
}

// Error state for the name field after a failed validation.
func styleInputError() lipgloss.Style {
	return styleInput().BorderForeground(theme.Current().Error)
}

func styleFieldError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Error)
}

func styleEmojiBox(focused bool) lipgloss.Style {
	border := theme.Current().BorderNormal
	if focused {
		border = theme.Current().BorderFocused
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

func styleButton() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderNormal).
		Padding(0, 2)
}

func styleButtonPrimary() lipgloss.Style {
	return styleButton().
		Foreground(theme.Current().Primary).
		BorderForeground(theme.Current().Primary).
		Bold(true)
}

func styleButtonDisabled() lipgloss.Style {
	return styleButton().Foreground(theme.Current().TextMuted)
}

func styleKeyPill() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Background).
		Background(theme.Current().TextMuted)
}

func styleKeyDesc() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

func styleToast(border lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(theme.Current().Text).
		Padding(0, 1)
}

func styleErrorToast() lipgloss.Style {
	return styleToast(theme.Current().Error)
}

func styleWarningToast() lipgloss.Style {
	return styleToast(theme.Current().Warning)
}

func styleSuccessToast() lipgloss.Style {
	return styleToast(theme.Current().Success)
}

func styleLoadingBox() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().Primary).
		Foreground(theme.Current().Text).
		Padding(1, 4)
}

// buildMarkdownRenderer returns a glamour renderer for the configured output
// format. "rich" follows the active theme, "plain" only wraps.
func buildMarkdownRenderer(format string, width int) func(string) string {
	fallback := func(input string) string {
		return wrapText(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	switch style {
	case "plain":
		return fallback
	case "", "rich":
		style = theme.Current().Glamour
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.Trim(out, "\n")
	}
}
