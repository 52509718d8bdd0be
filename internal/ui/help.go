package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/hearth/internal/ui/input"
	"github.com/leighmacdonald/hearth/internal/ui/styles"
)

type helpModel struct {
	helpView     help.Model
	configPath   string
	buildVersion string
	buildDate    string
	buildCommit  string
}

func newHelpModel(buildVersion, buildDate, buildCommit, configPath string) helpModel {
	return helpModel{
		helpView:     help.New(),
		configPath:   configPath,
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (m helpModel) Init() tea.Cmd {
	return nil
}

func (m helpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, input.Default.Back) {
		return m, popPage()
	}

	return m, nil
}

func (m helpModel) View() string {
	columns := input.Default.FullHelp()
	boxes := make([]string, 0, len(columns))
	for _, column := range columns {
		boxes = append(boxes, styles.HelpBox.Render(m.helpView.FullHelpView([][]key.Binding{column})))
	}

	commit := m.buildCommit
	if len(commit) > 8 {
		commit = m.buildCommit[0:8]
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Top, boxes...),
		styles.DetailRow("Version", m.buildVersion),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.buildDate),
		styles.DetailRow("Config Path", m.configPath),
	)
}
