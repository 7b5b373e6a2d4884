package ui

import (
	"context"
	"strings"

	"orgsetup/internal/domain"
	"orgsetup/internal/orgapi"
	"orgsetup/internal/orgcreate"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const createIntro = `## Hey fen, 🖖
## Lets create your organization

Tell us more about your organization so we can provide personalized experience tailored to your needs and preferences`

const (
	createMaxWidth  = 72
	emojiBoxWidth   = 6
	descLines       = 4
	nameInputMargin = 5 // border + padding of the name box, plus the gap before it
)

// CreateFocus identifies the focused field of the create screen.
type CreateFocus int

const (
	FocusCover CreateFocus = iota
	FocusName
	FocusDesc
)

// createScreen is the create-organization form.
type createScreen struct {
	app  *App
	keys KeyMap

	form   *orgcreate.Form
	ctrl   *orgcreate.Controller
	picker emojiPicker

	nameInput textinput.Model
	descInput textarea.Model
	spinner   spinner.Model
	focus     CreateFocus

	outputFormat string
	width        int
	introWidth   int
	intro        string
}

func newCreateScreen(app *App, cfg Config) *createScreen {
	form := orgcreate.NewForm(cfg.DefaultCover)

	ti := textinput.New()
	ti.Placeholder = "Acme Labs"
	ti.CharLimit = 64
	ti.Prompt = ""
	ti.Width = 40

	desc := textarea.New()
	desc.Placeholder = "What does your organization do?"
	desc.ShowLineNumbers = false
	desc.CharLimit = 2000
	desc.SetWidth(44)
	desc.SetHeight(descLines)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	// Name is auto-focused; focus before storing since textinput.Model is a value type.
	ti.Focus()

	s := &createScreen{
		app:          app,
		keys:         app.keys,
		form:         form,
		picker:       newEmojiPicker(form.Value(domain.FieldCover)),
		nameInput:    ti,
		descInput:    desc,
		spinner:      sp,
		focus:        FocusName,
		outputFormat: cfg.OutputFormat,
	}
	s.ctrl = orgcreate.NewController(orgcreate.Deps{
		Creator:   cfg.Client,
		Notifier:  app.toasts,
		State:     app.store,
		Navigator: app,
	})
	return s
}

// Init implements screen.
func (s *createScreen) Init() tea.Cmd {
	return textinput.Blink
}

// Loading reports whether a create request is outstanding.
func (s *createScreen) Loading() bool {
	return s.ctrl.Loading()
}

// Focus returns the focused field.
func (s *createScreen) Focus() CreateFocus {
	return s.focus
}

// Form exposes the form state.
func (s *createScreen) Form() *orgcreate.Form {
	return s.form
}

// CapturesText implements screen.
func (s *createScreen) CapturesText() bool {
	return s.focus != FocusCover || s.Loading()
}

// Update implements screen.
func (s *createScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.resize(msg.Width)
		return nil

	case spinner.TickMsg:
		if !s.Loading() {
			return nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.passToFocused(msg)
}

func (s *createScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	// The loading overlay blocks the form.
	if s.Loading() {
		return nil
	}

	switch {
	case key.Matches(msg, s.keys.Submit):
		return s.handleSubmit()
	case key.Matches(msg, s.keys.Enter) && s.focus != FocusDesc:
		return s.handleSubmit()
	case key.Matches(msg, s.keys.Back):
		if err := s.app.Navigate(PathHome); err != nil {
			s.app.toasts.Error(err.Error())
		}
		return nil
	case key.Matches(msg, s.keys.Tab):
		return s.setFocus((s.focus + 1) % 3)
	case key.Matches(msg, s.keys.ShiftTab):
		return s.setFocus((s.focus + 2) % 3)
	}

	if s.focus == FocusCover {
		switch {
		case key.Matches(msg, s.keys.PrevEmoji):
			s.picker = s.picker.Prev()
			s.form.SetCover(s.picker.Value())
		case key.Matches(msg, s.keys.NextEmoji):
			s.picker = s.picker.Next()
			s.form.SetCover(s.picker.Value())
		}
		return nil
	}
	return s.passToFocused(msg)
}

// passToFocused forwards msg to the focused input and mirrors its value into
// the form.
func (s *createScreen) passToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case FocusName:
		s.nameInput, cmd = s.nameInput.Update(msg)
		s.form.Change(domain.FieldName, s.nameInput.Value())
	case FocusDesc:
		s.descInput, cmd = s.descInput.Update(msg)
		s.form.Change(domain.FieldDesc, s.descInput.Value())
	}
	return cmd
}

func (s *createScreen) setFocus(focus CreateFocus) tea.Cmd {
	s.nameInput.Blur()
	s.descInput.Blur()
	s.focus = focus
	switch focus {
	case FocusName:
		return s.nameInput.Focus()
	case FocusDesc:
		return s.descInput.Focus()
	}
	return nil
}

func (s *createScreen) handleSubmit() tea.Cmd {
	values, err := s.ctrl.Begin(s.form)
	s.nameInput.SetValue(s.form.Value(domain.FieldName))
	if err != nil {
		if s.form.HasErrors() && s.focus != FocusName {
			return s.setFocus(FocusName)
		}
		return nil
	}
	return tea.Batch(s.spinner.Tick, s.submitCmd(s.app.requestContext(), values))
}

func (s *createScreen) submitCmd(ctx context.Context, values domain.FormValues) tea.Cmd {
	ctrl := s.ctrl
	return func() tea.Msg {
		return createResultMsg{owner: s, result: ctrl.Execute(ctx, values)}
	}
}

// handleResult finishes a submission on the event loop.
func (s *createScreen) handleResult(res orgapi.Result) tea.Cmd {
	s.ctrl.Finish(res)
	return nil
}

func (s *createScreen) resize(width int) {
	s.width = min(max(width-4, 20), createMaxWidth)
	s.nameInput.Width = max(s.width-emojiBoxWidth-nameInputMargin-1, 8)
	s.descInput.SetWidth(max(s.width-4, 10))
}

func (s *createScreen) renderedIntro() string {
	if s.intro == "" || s.introWidth != s.width {
		s.intro = buildMarkdownRenderer(s.outputFormat, s.width)(createIntro)
		s.introWidth = s.width
	}
	return s.intro
}

// View implements screen.
func (s *createScreen) View(width, height int) string {
	if s.width == 0 {
		s.resize(width)
	}

	var b strings.Builder
	b.WriteString(s.renderedIntro())
	b.WriteString("\n\n")

	b.WriteString(styleLabel().Render("Organization name"))
	b.WriteString("\n")
	b.WriteString(s.renderNameRow())
	b.WriteString("\n")
	b.WriteString(s.renderNameHint())
	b.WriteString("\n\n")

	b.WriteString(styleLabel().Render("Description"))
	b.WriteString("\n")
	descStyle := styleInput()
	if s.focus == FocusDesc {
		descStyle = styleInputFocused()
	}
	b.WriteString(descStyle.Render(s.descInput.View()))
	b.WriteString("\n")

	b.WriteString(s.renderButtons())

	return lipgloss.NewStyle().PaddingLeft(2).Render(b.String())
}

func (s *createScreen) renderNameRow() string {
	emoji := styleEmojiBox(s.focus == FocusCover).Render(s.picker.Glyph())

	nameStyle := styleInput()
	switch {
	case s.form.Error(domain.FieldName) != "":
		nameStyle = styleInputError()
	case s.focus == FocusName:
		nameStyle = styleInputFocused()
	}
	name := nameStyle.Width(s.nameInput.Width + 3).Render(s.nameInput.View())

	return lipgloss.JoinHorizontal(lipgloss.Center, emoji, " ", name)
}

func (s *createScreen) renderNameHint() string {
	if msg := s.form.Error(domain.FieldName); msg != "" {
		return styleFieldError().Render(msg)
	}
	if s.focus == FocusCover {
		label := s.picker.Name()
		if label == "" {
			label = "custom cover"
		}
		return styleMuted().Render("←/→ " + label)
	}
	return styleMuted().Render("4 to 16 characters")
}

func (s *createScreen) renderButtons() string {
	create := styleButtonPrimary()
	if s.Loading() {
		create = styleButtonDisabled()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		create.Render("Create now"),
		" ",
		styleButton().Render("Back"),
	)
}

// Overlay implements screen; it is the loading box while submitting.
func (s *createScreen) Overlay() string {
	if !s.Loading() {
		return ""
	}
	return styleLoadingBox().Render(s.spinner.View() + " Submitting")
}

// Hints implements screen.
func (s *createScreen) Hints() []footerHint {
	if s.Loading() {
		return []footerHint{{"^c", "Quit"}}
	}
	hints := []footerHint{hintFor(s.keys.Submit)}
	if s.focus == FocusCover {
		hints = append(hints, hintFor(s.keys.PrevEmoji))
	} else if s.focus == FocusName {
		hints = append(hints, hintFor(s.keys.Enter))
	}
	return append(hints,
		hintFor(s.keys.Tab),
		hintFor(s.keys.Back),
		hintFor(s.keys.ForceQuit),
	)
}
