package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/leighmacdonald/hearth/internal/ui/input"
	"github.com/leighmacdonald/hearth/internal/ui/styles"
	"github.com/muesli/reflow/wordwrap"
)

const chatInputHeight = 1

type chatMessage struct {
	id      uuid.UUID
	author  string
	body    string
	created time.Time
	self    bool
}

type chatModel struct {
	screen   scrollScreen
	profile  *profile
	input    textinput.Model
	messages []chatMessage
}

func newChatModel(f *frame, prof *profile) tea.Model {
	draft := textinput.New()
	draft.Placeholder = "Write a message"
	draft.CharLimit = 280
	draft.Prompt = styles.ChatPrompt
	draft.Cursor.Style = styles.FocusedStyle

	now := time.Now()

	screen := newScrollScreen(f)
	screen.reserved = chatInputHeight

	return chatModel{
		screen:  screen,
		profile: prof,
		input:   draft,
		messages: []chatMessage{
			{id: uuid.New(), author: "hearth", body: "Your streak is safe for today. Nice work.", created: now.Add(-2 * time.Hour)},
			{id: uuid.New(), author: "maya", body: "Replied to your post in the community tab.", created: now.Add(-40 * time.Minute)},
		},
	}
}

func (m chatModel) Init() tea.Cmd {
	return nil
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.input.Focused() {
			return m.updateInput(keyMsg)
		}

		if key.Matches(keyMsg, input.Default.Compose) {
			m.screen.viewport.GotoBottom()

			return m, m.input.Focus()
		}
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.update(msg, m.content())

	return m, cmd
}

func (m chatModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, input.Default.CancelInput):
		m.input.Blur()

		return m, nil
	case key.Matches(msg, input.Default.Send):
		body := strings.TrimSpace(m.input.Value())
		if body == "" {
			return m, nil
		}
		m.messages = append(m.messages, chatMessage{
			id:      uuid.New(),
			author:  m.profile.username,
			body:    body,
			created: time.Now(),
			self:    true,
		})
		m.input.Reset()
		m.screen.sync(m.content())
		m.screen.viewport.GotoBottom()

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m chatModel) draft() string {
	return m.input.Value()
}

func (m chatModel) capturingInput() bool {
	return m.input.Focused()
}

func (m chatModel) content() string {
	width := max(20, m.screen.frame.width-2)
	rows := make([]string, 0, len(m.messages))
	for _, message := range m.messages {
		author := styles.ChatAuthor
		if message.self {
			author = styles.ChatAuthorSelf
		}
		rows = append(rows, lipgloss.JoinVertical(lipgloss.Left,
			author.Render(message.author)+" "+styles.ChatTime.Render(message.created.Format(time.Kitchen)),
			styles.ChatMessage.Render(wordwrap.String(message.body, width)),
		))
	}

	return strings.Join(rows, "\n\n")
}

func (m chatModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.screen.render(m.content()), m.input.View())
}
