package ui

import (
	"strings"

	"orgsetup/internal/debug"
	"orgsetup/internal/orgstate"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const historyLimit = 20

// homeScreen shows the current organization and the ones selected before it.
type homeScreen struct {
	app     *App
	keys    KeyMap
	history HistoryFunc

	viewport viewport.Model
	entries  []orgstate.HistoryEntry
	loadErr  error
	loaded   bool
	width    int
}

func newHomeScreen(app *App, cfg Config) *homeScreen {
	return &homeScreen{
		app:      app,
		keys:     app.keys,
		history:  cfg.History,
		viewport: viewport.New(0, 0),
	}
}

// Init implements screen.
func (s *homeScreen) Init() tea.Cmd {
	if s.history == nil {
		s.loaded = true
		return nil
	}
	ctx := s.app.requestContext()
	load := s.history
	return func() tea.Msg {
		entries, err := load(ctx)
		return historyLoadedMsg{owner: s, entries: entries, err: err}
	}
}

// CapturesText implements screen.
func (s *homeScreen) CapturesText() bool { return false }

// Update implements screen.
func (s *homeScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.viewport.Width = max(msg.Width-4, 10)
		s.viewport.Height = max(msg.Height-6, 1)
		s.refresh()
		return nil

	case historyLoadedMsg:
		if msg.owner != s {
			return nil
		}
		s.loaded = true
		s.entries = msg.entries
		s.loadErr = msg.err
		if len(s.entries) > historyLimit {
			s.entries = s.entries[:historyLimit]
		}
		if msg.err != nil {
			debug.Event("ui", "history.failed", "error", msg.err)
		}
		s.refresh()
		return nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.NewOrg), key.Matches(msg, s.keys.Enter):
			if err := s.app.Navigate(PathCreate); err != nil {
				s.app.toasts.Error(err.Error())
			}
			return nil
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

func (s *homeScreen) refresh() {
	s.viewport.SetContent(s.renderHistory())
}

func (s *homeScreen) renderHistory() string {
	switch {
	case !s.loaded:
		return styleMuted().Render("Loading history...")
	case s.loadErr != nil:
		return styleFieldError().Render("Cannot load history: " + s.loadErr.Error())
	case len(s.entries) == 0:
		return styleMuted().Render("No organizations yet.")
	}

	rows := make([][]string, 0, len(s.entries))
	for _, e := range s.entries {
		rows = append(rows, []string{coverGlyph(e.Info.Cover), e.Info.Name, formatHistoryTime(e.RecordedAt)})
	}

	// Hidden column borders act as gutters.
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().PaddingRight(1)
			if col == 2 {
				return style.Inherit(styleMuted())
			}
			return style
		}).
		Rows(rows...)
	return strings.TrimRight(t.String(), "\n")
}

// View implements screen.
func (s *homeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(styleLabel().Render("Current organization"))
	b.WriteString("\n")
	if cur := s.app.current; cur.IsZero() {
		b.WriteString(styleMuted().Render("None yet. Press n to create one."))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
			styleEmojiBox(false).Render(coverGlyph(cur.Cover)),
			" ",
			lipgloss.NewStyle().Bold(true).Render(cur.Name),
		))
	}
	b.WriteString("\n\n")
	b.WriteString(styleLabel().Render("Recent"))
	b.WriteString("\n")
	b.WriteString(s.viewport.View())

	return lipgloss.NewStyle().PaddingLeft(2).Render(b.String())
}

// Overlay implements screen.
func (s *homeScreen) Overlay() string { return "" }

// Hints implements screen.
func (s *homeScreen) Hints() []footerHint {
	return []footerHint{
		hintFor(s.keys.NewOrg),
		{"↑↓", "Scroll"},
		hintFor(s.keys.CycleTheme),
		hintFor(s.keys.Quit),
	}
}
