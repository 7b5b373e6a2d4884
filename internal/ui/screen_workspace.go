package ui

import (
	"fmt"
	"strings"

	"orgsetup/internal/domain"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// workspaceScreen is where a freshly created organization lands.
type workspaceScreen struct {
	app          *App
	keys         KeyMap
	slug         string
	webBaseURL   string
	outputFormat string
	width        int
}

func newWorkspaceScreen(app *App, cfg Config, slug string) *workspaceScreen {
	return &workspaceScreen{
		app:          app,
		keys:         app.keys,
		slug:         slug,
		webBaseURL:   cfg.WebBaseURL,
		outputFormat: cfg.OutputFormat,
	}
}

// Init implements screen.
func (s *workspaceScreen) Init() tea.Cmd { return nil }

// CapturesText implements screen.
func (s *workspaceScreen) CapturesText() bool { return false }

// URL returns the web address of the workspace, or the bare path without a
// configured base URL.
func (s *workspaceScreen) URL() string {
	path := domain.WorkspacePath(s.slug)
	base := strings.TrimSuffix(s.webBaseURL, "/")
	if base == "" {
		return path
	}
	return base + path
}

// Update implements screen.
func (s *workspaceScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Copy):
			return copyToClipboard(s.URL())
		case key.Matches(msg, s.keys.Back):
			s.navigate(PathHome)
		case key.Matches(msg, s.keys.NewOrg):
			s.navigate(PathCreate)
		}
	}
	return nil
}

func (s *workspaceScreen) navigate(path string) {
	if err := s.app.Navigate(path); err != nil {
		s.app.toasts.Error(err.Error())
	}
}

func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardCopiedMsg{text: text, err: writeClipboard(text)}
	}
}

func (s *workspaceScreen) markdown() string {
	name := s.app.current.Name
	if name == "" {
		name = s.slug
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", coverGlyph(s.app.current.Cover), name)
	b.WriteString("Your organization is ready. :tada:\n\n")
	fmt.Fprintf(&b, "- **Slug:** `%s`\n", s.slug)
	fmt.Fprintf(&b, "- **Path:** `%s`\n", domain.WorkspacePath(s.slug))
	fmt.Fprintf(&b, "- **URL:** %s\n", s.URL())
	return b.String()
}

// View implements screen.
func (s *workspaceScreen) View(width, height int) string {
	w := s.width
	if w == 0 {
		w = width
	}
	render := buildMarkdownRenderer(s.outputFormat, max(min(w-4, createMaxWidth), 20))
	return lipgloss.NewStyle().PaddingLeft(2).Render(render(s.markdown()))
}

// Overlay implements screen.
func (s *workspaceScreen) Overlay() string { return "" }

// Hints implements screen.
func (s *workspaceScreen) Hints() []footerHint {
	return []footerHint{
		hintFor(s.keys.Copy),
		hintFor(s.keys.NewOrg),
		hintFor(s.keys.Back),
		hintFor(s.keys.Quit),
	}
}

// notFoundScreen is shown for paths no screen handles.
type notFoundScreen struct {
	app  *App
	keys KeyMap
	path string
}

func newNotFoundScreen(app *App, path string) *notFoundScreen {
	return &notFoundScreen{app: app, keys: app.keys, path: path}
}

func (s *notFoundScreen) Init() tea.Cmd      { return nil }
func (s *notFoundScreen) CapturesText() bool { return false }
func (s *notFoundScreen) Overlay() string    { return "" }

func (s *notFoundScreen) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, s.keys.Back) {
		if err := s.app.Navigate(PathHome); err != nil {
			s.app.toasts.Error(err.Error())
		}
	}
	return nil
}

func (s *notFoundScreen) View(width, height int) string {
	return lipgloss.NewStyle().PaddingLeft(2).Render(
		styleFieldError().Render("Nothing here: "+s.path) + "\n" +
			styleMuted().Render("Press esc to go back."),
	)
}

func (s *notFoundScreen) Hints() []footerHint {
	return []footerHint{hintFor(s.keys.Back), hintFor(s.keys.Quit)}
}
