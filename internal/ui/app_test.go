package ui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"orgsetup/internal/config"
	"orgsetup/internal/domain"
	appErrors "orgsetup/internal/errors"
	"orgsetup/internal/orgapi"
	"orgsetup/internal/orgcreate"
	"orgsetup/internal/orgstate"
	"orgsetup/internal/ui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

type fakeCreator struct {
	mu     sync.Mutex
	calls  []domain.FormValues
	result orgapi.Result
}

func (f *fakeCreator) CreateOrganization(_ context.Context, values domain.FormValues) orgapi.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, values)
	return f.result
}

func (f *fakeCreator) Calls() []domain.FormValues {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.FormValues(nil), f.calls...)
}

func createdResult(name, slug, cover string) orgapi.Result {
	org := domain.Organization{Name: name, Slug: slug}
	if cover != "" {
		org.Cover = &cover
	}
	return orgapi.Result{Kind: orgapi.ResultCreated, Status: 200, Organization: org}
}

func newTestApp(t *testing.T, cfg Config) *App {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	if cfg.DefaultCover == "" {
		cfg.DefaultCover = config.DefaultCover
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "plain"
	}
	app, err := NewApp(cfg)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	t.Cleanup(app.Close)
	app.Init()
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 32})
	return app
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(app *App, text string) {
	for _, r := range text {
		app.Update(keyRunes(string(r)))
	}
}

// collectMsgs runs cmd and any batched children, dropping commands that do
// not return promptly (timers).
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collectMsgs(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

// pressAndDeliver sends msg and returns the first message of type T produced
// by the resulting commands.
func pressAndDeliver[T tea.Msg](t *testing.T, app *App, msg tea.Msg) T {
	t.Helper()
	_, cmd := app.Update(msg)
	for _, m := range collectMsgs(cmd) {
		if want, ok := m.(T); ok {
			return want
		}
	}
	var zero T
	t.Fatalf("no %T produced by %#v", zero, msg)
	return zero
}

func createScreenOf(t *testing.T, app *App) *createScreen {
	t.Helper()
	s, ok := app.screen.(*createScreen)
	if !ok {
		t.Fatalf("screen is %T, want *createScreen", app.screen)
	}
	return s
}

func viewText(app *App) string {
	return ansi.Strip(app.View())
}

func toastMessages(app *App) []string {
	var out []string
	for _, item := range app.toasts.items {
		out = append(out, item.message)
	}
	return out
}

func TestNewAppStartsOnCreate(t *testing.T) {
	app := newTestApp(t, Config{})
	if app.Route() != PathCreate {
		t.Fatalf("Route() = %q, want %q", app.Route(), PathCreate)
	}

	view := viewText(app)
	for _, want := range []string{"Hey fen", "Lets create your organization", "Organization name", "Description", "Create now", "Back"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if !strings.Contains(view, "No organization selected") {
		t.Error("header should say no organization is selected")
	}
}

func TestNewAppRejectsBadStartPath(t *testing.T) {
	_, err := NewApp(Config{StartPath: "organization"})
	if !appErrors.IsCode(err, appErrors.CodeNavigationFailed) {
		t.Fatalf("expected navigation error, got %v", err)
	}
}

func TestViewBeforeWindowSize(t *testing.T) {
	app, err := NewApp(Config{})
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()
	if got := app.View(); got != "Loading..." {
		t.Fatalf("View() = %q", got)
	}
}

func TestCreateSuccessNavigatesToWorkspace(t *testing.T) {
	creator := &fakeCreator{result: createdResult("Acme Labs", "acme-labs", "x.png")}
	store := orgstate.NewStore(domain.OrgInfo{})
	app := newTestApp(t, Config{Client: creator, Store: store})

	typeText(app, "  Acme Labs  ")
	res := pressAndDeliver[createResultMsg](t, app, tea.KeyMsg{Type: tea.KeyCtrlS})

	if !createScreenOf(t, app).Loading() {
		t.Fatal("screen should be loading while the request is outstanding")
	}
	if !strings.Contains(viewText(app), "Submitting") {
		t.Error("loading overlay not shown")
	}

	app.Update(res)

	if app.Route() != "/acme-labs/my-works" {
		t.Fatalf("Route() = %q, want /acme-labs/my-works", app.Route())
	}
	if got := store.Current(); got != (domain.OrgInfo{Name: "Acme Labs", Cover: "x.png"}) {
		t.Errorf("store = %+v", got)
	}
	calls := creator.Calls()
	if len(calls) != 1 {
		t.Fatalf("creator called %d times", len(calls))
	}
	if calls[0] != (domain.FormValues{Name: "Acme Labs", Cover: config.DefaultCover}) {
		t.Errorf("sent %+v", calls[0])
	}
	if len(app.toasts.items) != 0 {
		t.Errorf("unexpected toasts: %v", toastMessages(app))
	}

	view := viewText(app)
	if !strings.Contains(view, "Acme Labs") || !strings.Contains(view, "acme-labs") {
		t.Errorf("workspace view missing organization:\n%s", view)
	}
}

func TestCreateSuccessWithoutCoverStoresEmpty(t *testing.T) {
	creator := &fakeCreator{result: createdResult("Acme", "acme", "")}
	store := orgstate.NewStore(domain.OrgInfo{Name: "Old", Cover: "old.png"})
	app := newTestApp(t, Config{Client: creator, Store: store})

	typeText(app, "Acme")
	app.Update(pressAndDeliver[createResultMsg](t, app, tea.KeyMsg{Type: tea.KeyCtrlS}))

	if got := store.Current(); got != (domain.OrgInfo{Name: "Acme"}) {
		t.Fatalf("store = %+v, want name only", got)
	}
	if app.current != store.Current() {
		t.Errorf("app header state not updated: %+v", app.current)
	}
}

func TestCreateValidationBlocksRequest(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Empty", "", "Title is required !"},
		{"Blank", "     ", "Title is required !"},
		{"TooShort", "abc", "Title must greater than or equal 4 characters !"},
		{"TooLong", "abcdefghijklmnopq", "Title must less than or equal 16 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &fakeCreator{}
			app := newTestApp(t, Config{Client: creator})

			typeText(app, tt.input)
			_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
			for _, msg := range collectMsgs(cmd) {
				if _, ok := msg.(createResultMsg); ok {
					t.Fatal("invalid form must not be submitted")
				}
			}

			s := createScreenOf(t, app)
			if s.Loading() {
				t.Error("invalid form left the screen loading")
			}
			if got := s.Form().Error(domain.FieldName); got != tt.want {
				t.Errorf("field error = %q, want %q", got, tt.want)
			}
			if msgs := toastMessages(app); len(msgs) != 1 || msgs[0] != tt.want {
				t.Errorf("toasts = %v", msgs)
			}
			if len(creator.Calls()) != 0 {
				t.Error("creator should not be called")
			}
		})
	}
}

func TestCreateFailuresShowToasts(t *testing.T) {
	tests := []struct {
		name      string
		result    orgapi.Result
		wantLevel toastLevel
		wantMsg   string
	}{
		{
			name:      "NotOK",
			result:    orgapi.Result{Kind: orgapi.ResultApplicationFailure, Status: 201},
			wantLevel: toastError,
			wantMsg:   orgcreate.MsgCannotCreate,
		},
		{
			name:      "ReachedMax",
			result:    orgapi.Result{Kind: orgapi.ResultTransportFailure, Status: 403, Failure: orgapi.FailureReachedMaxOrganization},
			wantLevel: toastWarning,
			wantMsg:   orgcreate.MsgReachedMax,
		},
		{
			name:      "Duplicate",
			result:    orgapi.Result{Kind: orgapi.ResultTransportFailure, Status: 409, Failure: orgapi.FailureDuplicateOrganization},
			wantLevel: toastError,
			wantMsg:   orgcreate.MsgDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := orgstate.NewStore(domain.OrgInfo{})
			app := newTestApp(t, Config{Client: &fakeCreator{result: tt.result}, Store: store})

			typeText(app, "Acme")
			app.Update(pressAndDeliver[createResultMsg](t, app, tea.KeyMsg{Type: tea.KeyCtrlS}))

			if app.Route() != PathCreate {
				t.Errorf("Route() = %q, want to stay on create", app.Route())
			}
			if createScreenOf(t, app).Loading() {
				t.Error("loading not cleared")
			}
			if !store.Current().IsZero() {
				t.Errorf("store written on failure: %+v", store.Current())
			}
			if len(app.toasts.items) != 1 {
				t.Fatalf("toasts = %v", toastMessages(app))
			}
			got := app.toasts.items[0]
			if got.level != tt.wantLevel || got.message != tt.wantMsg {
				t.Errorf("toast = %d %q, want %d %q", got.level, got.message, tt.wantLevel, tt.wantMsg)
			}
			if !strings.Contains(viewText(app), strings.Fields(tt.wantMsg)[0]) {
				t.Error("toast not drawn")
			}
		})
	}
}

func TestCreateUnrecognizedFailureIsSilent(t *testing.T) {
	res := orgapi.Result{
		Kind:    orgapi.ResultTransportFailure,
		Status:  500,
		Failure: orgapi.FailureUnrecognized,
		Err:     errors.New("boom"),
	}
	app := newTestApp(t, Config{Client: &fakeCreator{result: res}})

	typeText(app, "Acme")
	app.Update(pressAndDeliver[createResultMsg](t, app, tea.KeyMsg{Type: tea.KeyCtrlS}))

	if len(app.toasts.items) != 0 {
		t.Errorf("expected no toasts, got %v", toastMessages(app))
	}
	if createScreenOf(t, app).Loading() {
		t.Error("loading not cleared")
	}
	if strings.Contains(viewText(app), "Submitting") {
		t.Error("loading overlay still drawn")
	}
}

func TestCreateWithoutClientClearsLoading(t *testing.T) {
	app := newTestApp(t, Config{})

	typeText(app, "Acme")
	app.Update(pressAndDeliver[createResultMsg](t, app, tea.KeyMsg{Type: tea.KeyCtrlS}))

	if createScreenOf(t, app).Loading() {
		t.Fatal("loading not cleared")
	}
}

func TestCreateIgnoresKeysWhileLoading(t *testing.T) {
	creator := &fakeCreator{result: createdResult("Acme", "acme", "")}
	app := newTestApp(t, Config{Client: creator})

	typeText(app, "Acme")
	res := pressAndDeliver[createResultMsg](t, app, tea.KeyMsg{Type: tea.KeyCtrlS})

	typeText(app, "zz")
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	s := createScreenOf(t, app)
	if got := s.Form().Value(domain.FieldName); got != "Acme" {
		t.Errorf("name changed while loading: %q", got)
	}
	if app.Route() != PathCreate {
		t.Errorf("navigated while loading: %q", app.Route())
	}
	for _, msg := range collectMsgs(cmd) {
		if _, ok := msg.(createResultMsg); ok {
			t.Error("second submit started while loading")
		}
	}

	app.Update(res)
	if len(creator.Calls()) != 1 {
		t.Errorf("creator called %d times", len(creator.Calls()))
	}
}

func TestCreateForceQuitWhileLoading(t *testing.T) {
	app := newTestApp(t, Config{Client: &fakeCreator{}})
	typeText(app, "Acme")
	app.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c should quit")
	}
}

func TestCreateEnterSubmitsFromName(t *testing.T) {
	creator := &fakeCreator{result: createdResult("Acme", "acme", "")}
	app := newTestApp(t, Config{Client: creator})

	typeText(app, "Acme")
	app.Update(pressAndDeliver[createResultMsg](t, app, tea.KeyMsg{Type: tea.KeyEnter}))

	if app.Route() != "/acme/my-works" {
		t.Fatalf("Route() = %q", app.Route())
	}
}

func TestCreatePickerChangesCover(t *testing.T) {
	creator := &fakeCreator{result: createdResult("Acme", "acme", "")}
	app := newTestApp(t, Config{Client: creator})

	typeText(app, "Acme")
	app.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	s := createScreenOf(t, app)
	if s.Focus() != FocusCover {
		t.Fatalf("focus = %d, want cover", s.Focus())
	}
	if !strings.Contains(viewText(app), "mushroom") {
		t.Error("picker hint should name the selected emoji")
	}

	app.Update(tea.KeyMsg{Type: tea.KeyRight})
	app.Update(keyRunes("l"))
	app.Update(keyRunes("h"))
	if got := s.Form().Value(domain.FieldCover); got != coverCatalogue[1].URL {
		t.Fatalf("cover = %q, want %q", got, coverCatalogue[1].URL)
	}
	if got := s.Form().Value(domain.FieldName); got != "Acme" {
		t.Errorf("picker keys leaked into the name: %q", got)
	}

	app.Update(pressAndDeliver[createResultMsg](t, app, tea.KeyMsg{Type: tea.KeyCtrlS}))
	if calls := creator.Calls(); len(calls) != 1 || calls[0].Cover != coverCatalogue[1].URL {
		t.Fatalf("sent %+v", calls)
	}
}

func TestCreateDescriptionSentAsEntered(t *testing.T) {
	creator := &fakeCreator{result: createdResult("Acme", "acme", "")}
	app := newTestApp(t, Config{Client: creator})

	typeText(app, "Acme")
	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	if createScreenOf(t, app).Focus() != FocusDesc {
		t.Fatal("tab should move to the description")
	}
	typeText(app, " we build ")
	app.Update(pressAndDeliver[createResultMsg](t, app, tea.KeyMsg{Type: tea.KeyCtrlS}))

	calls := creator.Calls()
	if len(calls) != 1 || calls[0].Desc != " we build " {
		t.Fatalf("sent %+v", calls)
	}
}

func TestCreateInvalidSubmitRefocusesName(t *testing.T) {
	creator := &fakeCreator{result: createdResult("Acme", "acme", "")}
	app := newTestApp(t, Config{Client: creator})

	typeText(app, "Ac")
	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	s := createScreenOf(t, app)
	if s.Focus() != FocusName {
		t.Fatalf("focus = %d, want name", s.Focus())
	}
	if !s.Form().HasErrors() {
		t.Error("form should carry the name error")
	}
	if len(creator.Calls()) != 0 {
		t.Errorf("invalid form was sent: %+v", creator.Calls())
	}
}

func TestCreateBackGoesHome(t *testing.T) {
	app := newTestApp(t, Config{})
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if app.Route() != PathHome {
		t.Fatalf("Route() = %q, want %q", app.Route(), PathHome)
	}

	app.Update(keyRunes("n"))
	if app.Route() != PathCreate {
		t.Fatalf("n from home: Route() = %q", app.Route())
	}
}

func TestHomeShowsHistory(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 0, 0, time.UTC)
	history := func(context.Context) ([]orgstate.HistoryEntry, error) {
		return []orgstate.HistoryEntry{
			{Info: domain.OrgInfo{Name: "Second", Cover: config.DefaultCover}, RecordedAt: at},
			{Info: domain.OrgInfo{Name: "First"}, RecordedAt: at.Add(-time.Hour)},
		}, nil
	}
	store := orgstate.NewStore(domain.OrgInfo{Name: "Second", Cover: config.DefaultCover})
	app := newTestApp(t, Config{StartPath: PathHome, History: history, Store: store})

	if !strings.Contains(viewText(app), "Loading history") {
		t.Error("expected loading placeholder before history arrives")
	}

	s := app.screen.(*homeScreen)
	app.Update(collectMsgs(s.Init())[0])

	view := viewText(app)
	for _, want := range []string{"Current organization", "Second", "First", "🍄", "orgsetup"} {
		if !strings.Contains(view, want) {
			t.Errorf("home view missing %q:\n%s", want, view)
		}
	}
	// History names line up in one column.
	nameColumn := func(name string) int {
		lines := strings.Split(view, "\n")
		for i := len(lines) - 1; i >= 0; i-- {
			if idx := strings.Index(lines[i], name); idx >= 0 {
				return ansi.StringWidth(lines[i][:idx])
			}
		}
		return -1
	}
	if a, b := nameColumn("Second"), nameColumn("First"); a < 0 || a != b {
		t.Errorf("history names not aligned (%d vs %d):\n%s", a, b, view)
	}
}

func TestHomeHistoryError(t *testing.T) {
	history := func(context.Context) ([]orgstate.HistoryEntry, error) {
		return nil, errors.New("disk gone")
	}
	app := newTestApp(t, Config{StartPath: PathHome, History: history})
	s := app.screen.(*homeScreen)
	app.Update(collectMsgs(s.Init())[0])

	if !strings.Contains(viewText(app), "Cannot load history: disk gone") {
		t.Errorf("history error not shown:\n%s", viewText(app))
	}
}

func TestHomeIgnoresStaleHistory(t *testing.T) {
	app := newTestApp(t, Config{StartPath: PathHome})
	s := app.screen.(*homeScreen)
	s.Update(historyLoadedMsg{owner: &homeScreen{}, entries: []orgstate.HistoryEntry{{Info: domain.OrgInfo{Name: "Ghost"}}}})
	if strings.Contains(viewText(app), "Ghost") {
		t.Error("history for another screen was applied")
	}
}

func TestWorkspaceCopyURL(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	app := newTestApp(t, Config{StartPath: "/acme/my-works", WebBaseURL: "https://app.example.com/"})
	if !strings.Contains(viewText(app), "https://app.example.com/acme/my-works") {
		t.Errorf("workspace URL not shown:\n%s", viewText(app))
	}

	app.Update(pressAndDeliver[clipboardCopiedMsg](t, app, keyRunes("c")))
	if copied != "https://app.example.com/acme/my-works" {
		t.Fatalf("copied %q", copied)
	}
	if msgs := toastMessages(app); len(msgs) != 1 || !strings.Contains(msgs[0], "Copied") {
		t.Fatalf("toasts = %v", msgs)
	}
}

func TestWorkspaceCopyFailure(t *testing.T) {
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no display") }
	t.Cleanup(func() { writeClipboard = orig })

	app := newTestApp(t, Config{StartPath: "/acme/my-works"})
	app.Update(pressAndDeliver[clipboardCopiedMsg](t, app, keyRunes("c")))

	if msgs := toastMessages(app); len(msgs) != 1 || msgs[0] != "Cannot copy to clipboard: no display" {
		t.Fatalf("toasts = %v", msgs)
	}
	if app.toasts.items[0].level != toastError {
		t.Error("copy failure should be an error toast")
	}
}

func TestWorkspaceURLWithoutBase(t *testing.T) {
	app := newTestApp(t, Config{StartPath: "/acme/my-works"})
	s := app.screen.(*workspaceScreen)
	if s.URL() != "/acme/my-works" {
		t.Fatalf("URL() = %q", s.URL())
	}
}

func TestNotFoundScreen(t *testing.T) {
	app := newTestApp(t, Config{StartPath: "/nowhere"})
	if !strings.Contains(viewText(app), "Nothing here: /nowhere") {
		t.Fatalf("view:\n%s", viewText(app))
	}
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if app.Route() != PathHome {
		t.Fatalf("Route() = %q", app.Route())
	}
}

func TestCycleThemeFromHome(t *testing.T) {
	t.Cleanup(func() { theme.SetTheme(theme.DefaultName) })

	var saved string
	app := newTestApp(t, Config{
		StartPath:     PathHome,
		OnThemeChange: func(name string) error { saved = name; return nil },
	})
	before := theme.CurrentName()
	app.Update(keyRunes("t"))

	if theme.CurrentName() == before {
		t.Fatal("theme did not change")
	}
	if saved != theme.CurrentName() {
		t.Errorf("saved %q, current %q", saved, theme.CurrentName())
	}
	if msgs := toastMessages(app); len(msgs) != 1 || msgs[0] != "Theme: "+saved {
		t.Errorf("toasts = %v", msgs)
	}
}

func TestQuitKeyIsTypedIntoName(t *testing.T) {
	app := newTestApp(t, Config{})
	_, cmd := app.Update(keyRunes("q"))
	for _, msg := range collectMsgs(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			t.Fatal("q should be typed into the focused field")
		}
	}
	if got := createScreenOf(t, app).Form().Value(domain.FieldName); got != "q" {
		t.Fatalf("name = %q", got)
	}
}

func TestHeaderShowsCurrentOrganization(t *testing.T) {
	store := orgstate.NewStore(domain.OrgInfo{})
	app := newTestApp(t, Config{Store: store})
	store.SetOrgInfo(domain.OrgInfo{Name: "Globex", Cover: config.DefaultCover})

	header := ansi.Strip(app.renderHeader())
	if !strings.Contains(header, "🍄 Globex") {
		t.Fatalf("header = %q", header)
	}
}

func TestRichIntroRenders(t *testing.T) {
	app := newTestApp(t, Config{OutputFormat: "rich"})
	if !strings.Contains(viewText(app), "create your organization") {
		t.Fatalf("rich intro missing:\n%s", viewText(app))
	}
}
