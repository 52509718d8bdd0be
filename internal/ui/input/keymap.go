package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Quit          key.Binding
	Help          key.Binding
	Profile       key.Binding
	Back          key.Binding
	Accept        key.Binding
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	PrevTab       key.Binding
	NextTab       key.Binding
	Home          key.Binding
	Community     key.Binding
	Chat          key.Binding
	Notifications key.Binding
	Settings      key.Binding
	Compose       key.Binding
	Send          key.Binding
	CancelInput   key.Binding
}

// ShortHelp implements help.KeyMap.
func (m Map) ShortHelp() []key.Binding {
	return []key.Binding{m.NextTab, m.Help, m.Quit}
}

// FullHelp implements help.KeyMap.
func (m Map) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Home, m.Community, m.Chat, m.Notifications, m.Settings},
		{m.NextTab, m.PrevTab, m.Up, m.Down, m.Left, m.Right},
		{m.Accept, m.Compose, m.Send, m.CancelInput, m.Profile, m.Back, m.Help, m.Quit},
	}
}

var Default = Map{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	Profile: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "Profile"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "Select"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "Decrease"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "Increase"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next Tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift tab", "Prev Tab"),
	),
	Home: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "Home"),
	),
	Community: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "Community"),
	),
	Chat: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "Chat"),
	),
	Notifications: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "Notifications"),
	),
	Settings: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "Settings"),
	),
	Compose: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "Write message"),
	),
	Send: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "Send"),
	),
	CancelInput: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Stop writing"),
	),
}
