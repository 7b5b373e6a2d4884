package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// footerHint defines a key hint for the footer bar.
type footerHint struct {
	key  string
	desc string
}

func hintFor(b key.Binding) footerHint {
	h := b.Help()
	return footerHint{key: h.Key, desc: h.Desc}
}

// renderFooter renders key hints as pills, dropping trailing hints that do
// not fit, with right aligned text.
func renderFooter(hints []footerHint, right string, width int) string {
	rightRendered := styleKeyDesc().Render(right)
	available := width - lipgloss.Width(rightRendered) - 2

	var parts []string
	used := 0
	for _, h := range hints {
		pill := keyPill(h.key, h.desc)
		w := lipgloss.Width(pill)
		if used > 0 {
			w += 2
		}
		if used+w > available {
			break
		}
		parts = append(parts, pill)
		used += w
	}

	left := strings.Join(parts, "  ")
	spacing := width - lipgloss.Width(left) - lipgloss.Width(rightRendered)
	if spacing < 1 {
		spacing = 1
	}
	return left + strings.Repeat(" ", spacing) + rightRendered
}

// keyPill renders a single key hint as a pill with description.
func keyPill(key, desc string) string {
	return styleKeyPill().Render(" "+key+" ") + " " + styleKeyDesc().Render(desc)
}
