package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/hearth/internal/ui/input"
	"github.com/leighmacdonald/hearth/internal/ui/styles"
)

const maxSafeAreaRows = 8

type settingsItem int

const (
	settingSafeArea settingsItem = iota
	settingProfile
	settingHelp
	settingSave
)

type settingsModel struct {
	screen   scrollScreen
	selected settingsItem
	items    []settingsItem
}

func newSettingsModel(f *frame) tea.Model {
	return settingsModel{
		screen: newScrollScreen(f),
		items:  []settingsItem{settingSafeArea, settingProfile, settingHelp, settingSave},
	}
}

func (m settingsModel) Init() tea.Cmd {
	return nil
}

func (m settingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.screen, cmd = m.screen.update(msg, m.content())

		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, input.Default.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(keyMsg, input.Default.Down):
		if int(m.selected) < len(m.items)-1 {
			m.selected++
		}
	case key.Matches(keyMsg, input.Default.Left):
		if m.selected == settingSafeArea && m.screen.frame.safeAreaTop > 0 {
			return m, setSafeArea(m.screen.frame.safeAreaTop - 1)
		}
	case key.Matches(keyMsg, input.Default.Right):
		if m.selected == settingSafeArea && m.screen.frame.safeAreaTop < maxSafeAreaRows {
			return m, setSafeArea(m.screen.frame.safeAreaTop + 1)
		}
	case key.Matches(keyMsg, input.Default.Accept):
		switch m.selected {
		case settingProfile:
			return m, pushPage(pageProfile)
		case settingHelp:
			return m, pushPage(pageHelp)
		case settingSave:
			return m, saveConfig()
		case settingSafeArea:
		}
	}

	return m, nil
}

func (m settingsModel) label(item settingsItem) string {
	switch item {
	case settingSafeArea:
		return fmt.Sprintf("Reserved rows above header   ← %d →", m.screen.frame.safeAreaTop)
	case settingProfile:
		return "Open profile"
	case settingHelp:
		return "Keyboard shortcuts"
	case settingSave:
		return "Save settings"
	default:
		return ""
	}
}

func (m settingsModel) content() string {
	rows := make([]string, 0, len(m.items))
	for _, item := range m.items {
		if item == m.selected {
			rows = append(rows, styles.ListSelectedRow.Render("› "+m.label(item)))
		} else {
			rows = append(rows, styles.ListUnselectedRow.Render("  "+m.label(item)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("Preferences"),
		"",
		styles.Body.Render(strings.Join(rows, "\n")),
	)
}

func (m settingsModel) View() string {
	return m.screen.render(m.content())
}
