// Package view selects which screen is mounted inside the tab container.
package view

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/hearth/internal/tab"
)

type ID string

const (
	Dashboard ID = "Dashboard"
	Community ID = "Community"
	Chat      ID = "Chat"
	Settings  ID = "Settings"
)

// For maps a tab to the view it shows. Notifications has no view of its own yet and
// shares the chat view. Unknown tabs fall back to the dashboard.
func For(current tab.Tab) ID {
	switch current {
	case tab.Home:
		return Dashboard
	case tab.Community:
		return Community
	case tab.Chat, tab.Notifications:
		return Chat
	case tab.Settings:
		return Settings
	default:
		return Dashboard
	}
}

// Factory builds a freshly mounted view.
type Factory func() tea.Model

// Selector keeps exactly one view mounted, chosen from the active tab. A view is only
// replaced when the selected ID changes, so switching between tabs that share a view
// keeps its state.
type Selector struct {
	handle      tab.Handle
	factories   map[ID]Factory
	lastTab     tab.Tab
	derived     bool
	selected    ID
	mounted     tea.Model
	pendingInit tea.Cmd
	derivations int
	mounts      int
}

func NewSelector(handle tab.Handle, factories map[ID]Factory) *Selector {
	if factories == nil {
		factories = map[ID]Factory{}
	}

	return &Selector{handle: handle, factories: factories}
}

// Select returns the view for the active tab, mounting it if the selection changed.
func (s *Selector) Select() (ID, error) {
	current, err := s.handle.Active()
	if err != nil {
		return "", err
	}

	if s.derived && current == s.lastTab {
		return s.selected, nil
	}

	next := For(current)
	s.lastTab = current
	s.derived = true
	s.derivations++

	if next != s.selected || s.mounted == nil {
		s.mount(next)
	}

	return s.selected, nil
}

func (s *Selector) mount(next ID) {
	factory, found := s.factories[next]
	if !found {
		factory = s.factories[Dashboard]
	}

	s.selected = next
	if factory == nil {
		s.mounted = nil

		return
	}

	s.mounted = factory()
	s.mounts++
	s.pendingInit = s.mounted.Init()
	slog.Debug("Mounted view", slog.String("view", string(next)))
}

// Sync re-selects the view and returns the Init command of a newly mounted view.
func (s *Selector) Sync() tea.Cmd {
	if _, err := s.Select(); err != nil {
		return nil
	}

	initCmd := s.pendingInit
	s.pendingInit = nil

	return initCmd
}

// Update re-selects the view then forwards msg to it.
func (s *Selector) Update(msg tea.Msg) tea.Cmd {
	if !s.handle.Bound() {
		return nil
	}

	initCmd := s.Sync()
	if s.mounted == nil {
		return initCmd
	}

	var cmd tea.Cmd
	s.mounted, cmd = s.mounted.Update(msg)

	return tea.Batch(initCmd, cmd)
}

func (s *Selector) View() string {
	if s.mounted == nil {
		return ""
	}

	return s.mounted.View()
}

// Current returns the mounted view, nil before the first selection.
func (s *Selector) Current() tea.Model {
	return s.mounted
}

// Derivations counts how often the tab to view mapping was evaluated.
func (s *Selector) Derivations() int {
	return s.derivations
}

// Mounts counts how many views have been constructed.
func (s *Selector) Mounts() int {
	return s.mounts
}
