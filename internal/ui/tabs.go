package ui

import (
	"log/slog"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/hearth/internal/tab"
	"github.com/leighmacdonald/hearth/internal/ui/input"
	"github.com/leighmacdonald/hearth/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

type tabLabel struct {
	label  string
	tab    tab.Tab
	zoneID string
}

// tabsModel is the navigation bar. It holds no copy of the selection, every change
// goes through the store and every render reads it back.
type tabsModel struct {
	handle tab.Handle
	tabs   []tabLabel
	order  []tab.Tab
	width  int
}

func newTabsModel(handle tab.Handle) tabsModel {
	prefix := zone.NewPrefix()

	return tabsModel{
		handle: handle,
		order:  tab.All(),
		tabs: []tabLabel{
			{label: styles.IconHome + " Home", tab: tab.Home, zoneID: prefix + "home"},
			{label: styles.IconCommunity + " Community", tab: tab.Community, zoneID: prefix + "community"},
			{label: styles.IconChat + " Chat", tab: tab.Chat, zoneID: prefix + "chat"},
			{label: styles.IconBell + " Alerts", tab: tab.Notifications, zoneID: prefix + "notifications"},
			{label: styles.IconSettings + " Settings", tab: tab.Settings, zoneID: prefix + "settings"},
		},
	}
}

// cycle returns the tab next to current, wrapping at either end.
func cycle(order []tab.Tab, current tab.Tab, dir input.Direction) tab.Tab {
	index := slices.Index(order, current)
	if index == -1 {
		return order[0]
	}

	switch dir {
	case input.Backward:
		if index-1 < 0 {
			return order[len(order)-1]
		}

		return order[index-1]
	case input.Forward:
		if index+1 >= len(order) {
			return order[0]
		}

		return order[index+1]
	default:
		return current
	}
}

func (m tabsModel) Init() tea.Cmd {
	return nil
}

func (m tabsModel) Update(msg tea.Msg) (tabsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

		return m, nil
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for _, item := range m.tabs {
			if zone.Get(item.zoneID).InBounds(msg) {
				return m, m.set(item.tab)
			}
		}

		return m, nil
	case tea.KeyMsg:
		current, err := m.handle.Active()
		if err != nil {
			return m, nil
		}

		switch {
		case key.Matches(msg, input.Default.NextTab):
			return m, m.set(cycle(m.order, current, input.Forward))
		case key.Matches(msg, input.Default.PrevTab):
			return m, m.set(cycle(m.order, current, input.Backward))
		case key.Matches(msg, input.Default.Home):
			return m, m.set(tab.Home)
		case key.Matches(msg, input.Default.Community):
			return m, m.set(tab.Community)
		case key.Matches(msg, input.Default.Chat):
			return m, m.set(tab.Chat)
		case key.Matches(msg, input.Default.Notifications):
			return m, m.set(tab.Notifications)
		case key.Matches(msg, input.Default.Settings):
			return m, m.set(tab.Settings)
		}
	}

	return m, nil
}

// set calls the store setter. The new value is visible to everyone on the next render.
func (m tabsModel) set(next tab.Tab) tea.Cmd {
	if err := m.handle.SetActive(next); err != nil {
		slog.Error("Failed to change tab", slog.String("tab", next.String()), slog.String("error", err.Error()))

		return setStatusMessage(err.Error(), true)
	}

	return tabChanged(next)
}

func (m tabsModel) View() string {
	if m.width == 0 {
		return ""
	}

	current, err := m.handle.Active()
	if err != nil {
		return ""
	}

	tabs := make([]string, 0, len(m.tabs))
	for _, item := range m.tabs {
		if item.tab == current {
			tabs = append(tabs, zone.Mark(item.zoneID, styles.TabsActive.Render(item.label)))
		} else {
			tabs = append(tabs, zone.Mark(item.zoneID, styles.TabsInactive.Render(item.label)))
		}
	}

	return styles.TabContainer.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}
