package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"
)

type toastLevel int

const (
	toastSuccess toastLevel = iota
	toastWarning
	toastError
)

const (
	errorToastTTL   = 10 * time.Second
	warningToastTTL = 10 * time.Second
	successToastTTL = 5 * time.Second

	toastMinWidth = 30
	toastMaxWidth = 50
	maxToasts     = 3
)

type toast struct {
	level   toastLevel
	message string
	start   time.Time
	ttl     time.Duration
}

func (t toast) remaining(now time.Time) int {
	left := int((t.ttl - now.Sub(t.start)).Seconds())
	if left < 0 {
		return 0
	}
	return left
}

// toastStack holds the visible toasts, oldest first. It implements the
// create flow's notifier.
type toastStack struct {
	items   []toast
	now     func() time.Time
	ticking bool
}

func newToastStack() *toastStack {
	return &toastStack{now: time.Now}
}

// Warn shows a warning toast.
func (s *toastStack) Warn(msg string) { s.push(toastWarning, msg, warningToastTTL) }

// Error shows an error toast.
func (s *toastStack) Error(msg string) { s.push(toastError, msg, errorToastTTL) }

// Success shows a success toast.
func (s *toastStack) Success(msg string) { s.push(toastSuccess, msg, successToastTTL) }

func (s *toastStack) push(level toastLevel, msg string, ttl time.Duration) {
	s.items = append(s.items, toast{level: level, message: msg, start: s.now(), ttl: ttl})
	if len(s.items) > maxToasts {
		s.items = s.items[len(s.items)-maxToasts:]
	}
}

// prune drops expired toasts.
func (s *toastStack) prune() {
	now := s.now()
	kept := s.items[:0]
	for _, t := range s.items {
		if now.Sub(t.start) < t.ttl {
			kept = append(kept, t)
		}
	}
	s.items = kept
}

// tick schedules the next countdown refresh if toasts are visible and no tick
// is pending.
func (s *toastStack) tick() tea.Cmd {
	if len(s.items) == 0 || s.ticking {
		return nil
	}
	s.ticking = true
	return scheduleToastTick()
}

func (s *toastStack) handleTick() tea.Cmd {
	s.ticking = false
	s.prune()
	return s.tick()
}

// layers renders the toasts stacked upward from row bottom, newest lowest.
func (s *toastStack) layers(width, bottom int) []Layer {
	now := s.now()
	var out []Layer
	for i := len(s.items) - 1; i >= 0; i-- {
		content := renderToast(s.items[i], now)
		out = append(out, newToastLayer(content, width, bottom))
		bottom -= lipgloss.Height(content)
		if bottom <= 0 {
			break
		}
	}
	return out
}

func renderToast(t toast, now time.Time) string {
	var title string
	var style lipgloss.Style
	switch t.level {
	case toastError:
		title, style = "✖ Error", styleErrorToast()
	case toastWarning:
		title, style = "⚠ Warning", styleWarningToast()
	default:
		title, style = "✔ Done", styleSuccessToast()
	}

	body := wrapText(t.message, toastMaxWidth)
	countdownStr := fmt.Sprintf("[%ds]", t.remaining(now))

	toastWidth := toastMinWidth
	for _, line := range append(strings.Split(body, "\n"), title) {
		if w := lipgloss.Width(line); w > toastWidth {
			toastWidth = w
		}
	}
	padding := toastWidth - len(countdownStr)
	if padding < 0 {
		padding = 0
	}
	content := fmt.Sprintf("%s\n%s\n%s%s", title, body, strings.Repeat(" ", padding), countdownStr)
	return style.Render(content)
}
