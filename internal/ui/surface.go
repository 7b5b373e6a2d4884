package ui

import (
	"github.com/charmbracelet/lipgloss"

	"orgsetup/internal/ui/theme"
)

// Surface wraps a Canvas plus theme-aware styles for drawing UI regions with the
// correct background baked into every glyph.
type Surface struct {
	Canvas *Canvas
	Styles SurfaceStyles
}

// SurfaceStyles carry the surface background so callers don't chain it.
type SurfaceStyles struct {
	Text      lipgloss.Style
	TextMuted lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Success   lipgloss.Style
}

// NewPrimarySurface returns a Surface that uses the primary application
// background from the active theme.
func NewPrimarySurface(width, height int) Surface {
	return newSurface(width, height, theme.Current().Background)
}

// NewSecondarySurface returns a Surface backed by the secondary background
// (loading overlay, dialogs).
func NewSecondarySurface(width, height int) Surface {
	return newSurface(width, height, theme.Current().BackgroundSecondary)
}

func newSurface(width, height int, bg lipgloss.TerminalColor) Surface {
	th := theme.Current()
	canvas := NewCanvas(width, height)
	canvas.Fill(bg)
	base := lipgloss.NewStyle().Background(bg)
	return Surface{
		Canvas: canvas,
		Styles: SurfaceStyles{
			Text:      base.Foreground(th.Text),
			TextMuted: base.Foreground(th.TextMuted),
			Accent:    base.Foreground(th.Accent).Bold(true),
			Error:     base.Foreground(th.Error).Bold(true),
			Warning:   base.Foreground(th.Warning).Bold(true),
			Success:   base.Foreground(th.Success).Bold(true),
		},
	}
}

// Draw writes the provided block starting at x,y.
func (s Surface) Draw(x, y int, block string) {
	if s.Canvas == nil {
		return
	}
	s.Canvas.DrawStringAt(x, y, block)
}

// Render flushes the surface to a string (ANSI frame).
func (s Surface) Render() string {
	if s.Canvas == nil {
		return ""
	}
	return s.Canvas.Render()
}
