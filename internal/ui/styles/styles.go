package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Black       = lipgloss.Color("#111111")
	Gray        = lipgloss.Color("#3e3e3e")
	GrayDarkAlt = lipgloss.Color("#0f0f0f")
	White       = lipgloss.Color("#cccccc")

	Ember  = lipgloss.Color("#cf6a32")
	Gold   = lipgloss.Color("#ffd700")
	Moss   = lipgloss.Color("#4d7455")
	Plum   = lipgloss.Color("#8650ac")
	Slate  = lipgloss.Color("#476291")
	Danger = lipgloss.Color("#B8383B")

	HeaderContainerStyle = lipgloss.NewStyle().Background(Black)
	FooterContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)

	HeaderCaption = lipgloss.NewStyle().Foreground(White).Background(Black).Bold(true).PaddingLeft(1)
	HeaderMark    = lipgloss.NewStyle().Foreground(Gold).Background(Black).PaddingLeft(1)
	HeaderStreak  = lipgloss.NewStyle().Foreground(Ember).Background(Black).Bold(true).PaddingRight(2)
	HeaderProfile = lipgloss.NewStyle().Foreground(Slate).Background(Black).PaddingRight(1)

	FocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	TabContainer = lipgloss.NewStyle().Align(lipgloss.Center).Background(GrayDarkAlt)
	TabsInactive = lipgloss.NewStyle().Bold(true).
			Foreground(Slate).PaddingLeft(2).PaddingRight(2)
	TabsActive = lipgloss.NewStyle().Bold(true).Underline(true).
			Foreground(Plum).PaddingLeft(2).PaddingRight(2)

	StatusTab     = lipgloss.NewStyle().Foreground(Ember).PaddingRight(2).PaddingLeft(1).Bold(true)
	StatusError   = lipgloss.NewStyle().Foreground(Danger).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Moss).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center).PaddingRight(2)
	StatusVersion = lipgloss.NewStyle().Foreground(Moss).Bold(true).Align(lipgloss.Center).PaddingRight(2)

	Title    = lipgloss.NewStyle().Foreground(Gold).Bold(true).PaddingLeft(1)
	Subtle   = lipgloss.NewStyle().Foreground(Gray).PaddingLeft(1)
	Body     = lipgloss.NewStyle().Foreground(White).PaddingLeft(1)
	Card     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Gray).Padding(0, 1)

	ContainerBorder      = lipgloss.RoundedBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray).Padding(0, 1)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Slate).Padding(0, 1)

	ChatAuthor     = lipgloss.NewStyle().Foreground(Gold).Bold(true)
	ChatAuthorSelf = lipgloss.NewStyle().Foreground(Slate).Bold(true)
	ChatTime       = lipgloss.NewStyle().Foreground(Gray)
	ChatMessage    = lipgloss.NewStyle()
	ChatPrompt     = lipgloss.NewStyle().Foreground(Slate).Render("> ")

	ListSelectedRow   = lipgloss.NewStyle().Padding(0).Bold(true).Foreground(Plum)
	ListUnselectedRow = lipgloss.NewStyle().Padding(0).Foreground(White)

	PanelLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	Splash = lipgloss.NewStyle().Foreground(Ember).Bold(true)

	HelpBox = lipgloss.NewStyle().Padding(2)

	IconMark      = "✦"
	IconStreak    = "🔥"
	IconProfile   = "👤"
	IconHome      = "🏠"
	IconCommunity = "👥"
	IconChat      = "💬"
	IconBell      = "🔔"
	IconSettings  = "⚙"
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the length specified.
func WrapX(width int, value string, character string) string {
	all := width - lipgloss.Width(value)
	if all <= 0 {
		return value
	}

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all-all/2)
}

func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, "┤"+title+"├", border.Top)

	return border
}
