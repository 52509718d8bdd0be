package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/hearth/internal/header"
	"github.com/leighmacdonald/hearth/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// headerModel renders the fixed overlay header. The caption comes from the active
// tab, the streak and profile indicators are static values from the profile.
type headerModel struct {
	header        *header.Header
	profile       *profile
	profileZoneID string
}

func newHeaderModel(hdr *header.Header, prof *profile) headerModel {
	return headerModel{
		header:        hdr,
		profile:       prof,
		profileZoneID: zone.NewPrefix() + "profile",
	}
}

func (m headerModel) Update(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || mouse.Action != tea.MouseActionRelease || mouse.Button != tea.MouseButtonLeft {
		return nil
	}

	if zone.Get(m.profileZoneID).InBounds(mouse) {
		return pushPage(pageProfile)
	}

	return nil
}

// render fails before producing any output when the header cannot read tab state.
func (m headerModel) render(width int) (string, error) {
	caption, err := m.header.Caption()
	if err != nil {
		return "", err
	}

	showMark, err := m.header.ShowDecorativeMark()
	if err != nil {
		return "", err
	}

	left := styles.HeaderCaption.Render(caption)
	if showMark {
		left = styles.HeaderMark.Render(styles.IconMark) + left
	}

	right := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HeaderStreak.Render(styles.IconStreak+" "+humanize.Comma(int64(m.profile.streak))),
		zone.Mark(m.profileZoneID, styles.HeaderProfile.Render(styles.IconProfile+" "+m.profile.username)))

	gap := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))

	return styles.HeaderContainerStyle.Width(width).MaxWidth(width).
		Render(left + styles.HeaderContainerStyle.Render(strings.Repeat(" ", gap)) + right), nil
}
