package ui

import (
	"time"

	"orgsetup/internal/orgapi"
	"orgsetup/internal/orgstate"

	tea "github.com/charmbracelet/bubbletea"
)

// createResultMsg carries the backend's answer back onto the event loop.
type createResultMsg struct {
	owner  *createScreen
	result orgapi.Result
}

type toastTickMsg struct{}

func scheduleToastTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}

// clipboardCopiedMsg reports the outcome of a clipboard write.
type clipboardCopiedMsg struct {
	text string
	err  error
}

// historyLoadedMsg delivers the recent-organization list to the home screen.
type historyLoadedMsg struct {
	owner   *homeScreen
	entries []orgstate.HistoryEntry
	err     error
}
