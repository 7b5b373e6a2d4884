package ui

import (
	"context"
	"strings"
	"time"

	"orgsetup/internal/debug"
	"orgsetup/internal/domain"
	appErrors "orgsetup/internal/errors"
	"orgsetup/internal/orgcreate"
	"orgsetup/internal/orgstate"
	"orgsetup/internal/ui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HistoryFunc returns recently selected organizations, newest first.
type HistoryFunc func(ctx context.Context) ([]orgstate.HistoryEntry, error)

// Config configures the TUI.
type Config struct {
	Client       orgcreate.Creator
	Store        *orgstate.Store
	History      HistoryFunc
	DefaultCover string
	StartPath    string
	WebBaseURL   string
	OutputFormat string
	Version      string
	// OnThemeChange persists a theme picked in the UI. Optional.
	OnThemeChange func(name string) error
}

// screen is one routed view.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	Hints() []footerHint
	// Overlay returns content drawn centred over the screen, "" for none.
	Overlay() string
	// CapturesText reports whether plain keys are typed into a field.
	CapturesText() bool
}

// App is the root Bubble Tea model: header, routed screen, footer, and
// toast/loading layers on top.
type App struct {
	cfg    Config
	ctx    context.Context
	keys   KeyMap
	store  *orgstate.Store
	toasts *toastStack

	current     domain.OrgInfo
	unsubscribe func()

	route       route
	screen      screen
	pendingInit tea.Cmd

	width  int
	height int
	ready  bool
}

// NewApp builds the app and routes it to cfg.StartPath.
func NewApp(cfg Config) (*App, error) {
	if cfg.Store == nil {
		cfg.Store = orgstate.NewStore(domain.OrgInfo{})
	}
	if strings.TrimSpace(cfg.StartPath) == "" {
		cfg.StartPath = PathCreate
	}

	m := &App{
		cfg:    cfg,
		ctx:    context.Background(),
		keys:   DefaultKeyMap(),
		store:  cfg.Store,
		toasts: newToastStack(),
	}
	m.current = m.store.Current()
	m.unsubscribe = m.store.Subscribe(func(info domain.OrgInfo) {
		m.current = info
	})

	if err := m.Navigate(cfg.StartPath); err != nil {
		m.Close()
		return nil, err
	}
	return m, nil
}

// Close detaches the app from the shared store.
func (m *App) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Route returns the current in-app path.
func (m *App) Route() string {
	return m.route.path
}

// Navigate switches to the screen for path.
func (m *App) Navigate(path string) error {
	r, err := parseRoute(path)
	if err != nil {
		return err
	}
	debug.Event("ui", "navigate", "from", m.route.path, "to", r.path)

	m.route = r
	m.screen = m.buildScreen(r)
	if m.screen == nil {
		return appErrors.New(appErrors.CodeNavigationFailed, "no screen for "+r.path, nil)
	}
	if m.ready {
		m.screen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.bodyHeight()})
	}
	m.pendingInit = m.screen.Init()
	return nil
}

func (m *App) buildScreen(r route) screen {
	switch r.kind {
	case routeCreate:
		return newCreateScreen(m, m.cfg)
	case routeHome:
		return newHomeScreen(m, m.cfg)
	case routeWorkspace:
		return newWorkspaceScreen(m, m.cfg, r.slug)
	default:
		return newNotFoundScreen(m, r.path)
	}
}

// Init implements tea.Model.
func (m *App) Init() tea.Cmd {
	return m.takePendingInit()
}

func (m *App) takePendingInit() tea.Cmd {
	cmd := m.pendingInit
	m.pendingInit = nil
	return cmd
}

// Update implements tea.Model.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		cmds = append(cmds, m.screen.Update(tea.WindowSizeMsg{Width: msg.Width, Height: m.bodyHeight()}))

	case tea.KeyMsg:
		if handled, cmd := m.handleGlobalKey(msg); handled {
			return m, cmd
		}
		cmds = append(cmds, m.screen.Update(msg))

	case createResultMsg:
		if msg.owner != nil {
			cmds = append(cmds, msg.owner.handleResult(msg.result))
		}

	case toastTickMsg:
		cmds = append(cmds, m.toasts.handleTick())

	case clipboardCopiedMsg:
		if msg.err != nil {
			m.toasts.Error("Cannot copy to clipboard: " + msg.err.Error())
		} else {
			m.toasts.Success("Copied " + msg.text + " to clipboard.")
		}

	default:
		cmds = append(cmds, m.screen.Update(msg))
	}

	cmds = append(cmds, m.takePendingInit(), m.toasts.tick())
	return m, tea.Batch(cmds...)
}

func (m *App) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return true, tea.Quit
	case m.screen.CapturesText():
		return false, nil
	case key.Matches(msg, m.keys.Quit):
		return true, tea.Quit
	case key.Matches(msg, m.keys.CycleTheme):
		name := theme.CycleTheme()
		if m.cfg.OnThemeChange != nil {
			if err := m.cfg.OnThemeChange(name); err != nil {
				debug.Event("ui", "theme.save.failed", "theme", name, "error", err)
			}
		}
		m.toasts.Success("Theme: " + name)
		m.screen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.bodyHeight()})
		return true, m.toasts.tick()
	}
	return false, nil
}

func (m *App) bodyHeight() int {
	return max(m.height-2, 1)
}

// View implements tea.Model.
func (m *App) View() string {
	if !m.ready {
		return "Loading..."
	}

	body := m.screen.View(m.width, m.bodyHeight())
	frame := strings.Join([]string{
		m.renderHeader(),
		fitHeight(padLinesToWidth(body, m.width), m.bodyHeight()),
		renderFooter(m.screen.Hints(), m.route.path, m.width),
	}, "\n")

	var layers []Layer
	if overlay := m.screen.Overlay(); overlay != "" {
		layers = append(layers, newCenteredOverlayLayer(overlay, m.width, m.height, 1, 1))
	}
	layers = append(layers, m.toasts.layers(m.width, m.height-1)...)
	return composeLayers(frame, m.width, m.height, layers...)
}

func (m *App) renderHeader() string {
	title := styleHeader().Render("orgsetup")
	info := "No organization selected"
	if !m.current.IsZero() {
		info = coverGlyph(m.current.Cover) + " " + m.current.Name
	}
	right := styleHeaderInfo().Render(info)
	spacing := m.width - lipgloss.Width(title) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}
	return title + strings.Repeat(" ", spacing) + right
}

// requestContext bounds background work started from the UI.
func (m *App) requestContext() context.Context {
	return m.ctx
}

// formatHistoryTime renders a history timestamp in local time.
func formatHistoryTime(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Local().Format("2006-01-02 15:04")
}
