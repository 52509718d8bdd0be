package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/hearth/internal/tab"
)

// tabChangedMsg is emitted after the tab store accepted a change. The store is
// already updated when this is received, it only exists so observers can react.
type tabChangedMsg struct {
	tab tab.Tab
}

func tabChanged(current tab.Tab) tea.Cmd {
	return func() tea.Msg { return tabChangedMsg{tab: current} }
}

type page int

const (
	pageSplash page = iota
	pageMain
	pageHelp
	pageProfile
)

func (p page) String() string {
	switch p {
	case pageSplash:
		return "splash"
	case pageMain:
		return "main"
	case pageHelp:
		return "help"
	case pageProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// pushPageMsg opens a route outside of the tab container.
type pushPageMsg struct {
	page page
}

func pushPage(next page) tea.Cmd {
	return func() tea.Msg { return pushPageMsg{page: next} }
}

type popPageMsg struct{}

func popPage() tea.Cmd {
	return func() tea.Msg { return popPageMsg{} }
}

type splashDoneMsg struct{}

func splashAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return splashDoneMsg{}
	})
}

type clearStatusMessageMsg struct{}

func clearStatusAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return clearStatusMessageMsg{}
	})
}

type statusMsg struct {
	Message string
	Err     bool
}

func setStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{Message: msg, Err: err}
	}
}

// safeAreaMsg changes the number of rows reserved above the header.
type safeAreaMsg int

func setSafeArea(rows int) tea.Cmd {
	return func() tea.Msg { return safeAreaMsg(rows) }
}

type saveConfigMsg struct{}

func saveConfig() tea.Cmd {
	return func() tea.Msg { return saveConfigMsg{} }
}
