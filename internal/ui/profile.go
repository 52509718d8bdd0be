package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/hearth/internal/config"
	"github.com/leighmacdonald/hearth/internal/ui/input"
	"github.com/leighmacdonald/hearth/internal/ui/styles"
)

// profile holds the static user values shown by the header and several screens.
type profile struct {
	username string
	streak   int
}

func newProfile(conf config.Config) *profile {
	return &profile{username: conf.Username, streak: conf.Streak}
}

func (p *profile) apply(conf config.Config) {
	p.username = conf.Username
	p.streak = conf.Streak
}

// profilePageModel is the profile detail route, pushed on top of the tab container.
type profilePageModel struct {
	profile *profile
}

func newProfilePageModel(prof *profile) profilePageModel {
	return profilePageModel{profile: prof}
}

func (m profilePageModel) Init() tea.Cmd {
	return nil
}

func (m profilePageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, input.Default.Back) {
		return m, popPage()
	}

	return m, nil
}

func (m profilePageModel) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.DetailRow("Streak", humanize.Comma(int64(m.profile.streak))+" days"),
		styles.DetailRow("Member", "since the beginning"),
		"",
		styles.Subtle.Render(input.Default.Back.Help().Key+" "+input.Default.Back.Help().Desc),
	)

	return container(styles.IconProfile+" "+m.profile.username, lipgloss.Width(content)+2, content, true)
}
