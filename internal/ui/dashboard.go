package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/hearth/internal/ui/styles"
)

type dashboardModel struct {
	screen   scrollScreen
	profile  *profile
	sessions []dashboardSession
}

type dashboardSession struct {
	title    string
	minutes  int
	complete bool
}

func newDashboardModel(f *frame, prof *profile) tea.Model {
	return dashboardModel{
		screen:  newScrollScreen(f),
		profile: prof,
		sessions: []dashboardSession{
			{title: "Morning check-in", minutes: 5, complete: true},
			{title: "Breathing exercise", minutes: 10},
			{title: "Read a community post", minutes: 3},
			{title: "Evening reflection", minutes: 8},
		},
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.screen, cmd = m.screen.update(msg, m.content())

	return m, cmd
}

func (m dashboardModel) content() string {
	done := 0
	rows := make([]string, 0, len(m.sessions))
	for _, session := range m.sessions {
		marker := "○"
		if session.complete {
			marker = "●"
			done++
		}
		rows = append(rows, styles.Body.Render(fmt.Sprintf("%s %-24s %3d min", marker, session.title, session.minutes)))
	}

	streak := fmt.Sprintf("%s %s day streak", styles.IconStreak, humanize.Comma(int64(m.profile.streak)))

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("Welcome back, "+m.profile.username),
		styles.Subtle.Render(streak),
		"",
		styles.Title.Render("Today"),
		strings.Join(rows, "\n"),
		"",
		styles.Subtle.Render(fmt.Sprintf("%d of %d sessions done", done, len(m.sessions))),
	)
}

func (m dashboardModel) View() string {
	return m.screen.render(m.content())
}
