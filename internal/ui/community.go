package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/hearth/internal/ui/styles"
	"github.com/muesli/reflow/wordwrap"
)

type communityPost struct {
	author  string
	body    string
	posted  time.Time
	replies int
}

type communityModel struct {
	screen scrollScreen
	posts  []communityPost
	now    func() time.Time
}

func newCommunityModel(f *frame) tea.Model {
	now := time.Now()

	return communityModel{
		screen: newScrollScreen(f),
		now:    time.Now,
		posts: []communityPost{
			{
				author:  "maya",
				body:    "Day thirty of showing up. Some days it is five minutes, some days it is an hour, but it counts every time.",
				posted:  now.Add(-12 * time.Minute),
				replies: 14,
			},
			{
				author:  "jonas",
				body:    "Anyone else find the evening reflection easier with the lights off? Trying it tonight.",
				posted:  now.Add(-3 * time.Hour),
				replies: 6,
			},
			{
				author:  "ines",
				body:    "Reminder that a missed day is not a failure. Pick it back up tomorrow.",
				posted:  now.Add(-26 * time.Hour),
				replies: 1024,
			},
		},
	}
}

func (m communityModel) Init() tea.Cmd {
	return nil
}

func (m communityModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.screen, cmd = m.screen.update(msg, m.content())

	return m, cmd
}

func (m communityModel) content() string {
	width := max(20, m.screen.frame.width-6)
	cards := make([]string, 0, len(m.posts))
	for _, post := range m.posts {
		meta := styles.ChatTime.Render(humanize.RelTime(post.posted, m.now(), "ago", "from now") +
			" · " + humanize.Comma(int64(post.replies)) + " replies")
		cards = append(cards, styles.Card.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
			styles.ChatAuthor.Render(post.author),
			wordwrap.String(post.body, width-4),
			meta,
		)))
	}

	return strings.Join(cards, "\n")
}

func (m communityModel) View() string {
	return m.screen.render(m.content())
}
