package ui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/hearth/internal/config"
	"github.com/leighmacdonald/hearth/internal/header"
	"github.com/leighmacdonald/hearth/internal/tab"
	"github.com/leighmacdonald/hearth/internal/ui/input"
	"github.com/leighmacdonald/hearth/internal/ui/styles"
	"github.com/leighmacdonald/hearth/internal/view"
	zone "github.com/lrstanley/bubblezone"
)

// rootModel is the top level model for the ui side of the app. It hosts the tab
// container, the overlay header and the routes pushed on top of them.
type rootModel struct {
	handle       tab.Handle
	config       config.Config
	writer       config.Writer
	page         page
	pageStack    []page
	splash       time.Duration
	frame        *frame
	profile      *profile
	selector     *view.Selector
	header       headerModel
	tabs         tabsModel
	status       statusBarModel
	help         tea.Model
	profilePage  tea.Model
	height       int
	width        int
	tabBarHeight int
	footerHeight int
	version      string
}

func newRootModel(handle tab.Handle, userConfig config.Config, writer config.Writer,
	buildVersion string, buildDate string, buildCommit string,
) rootModel {
	viewFrame := newFrame(userConfig.SafeAreaTop)
	prof := newProfile(userConfig)

	configPath := ""
	if writer != nil {
		configPath = writer.Path()
	}

	selector := view.NewSelector(handle, map[view.ID]view.Factory{
		view.Dashboard: func() tea.Model { return newDashboardModel(viewFrame, prof) },
		view.Community: func() tea.Model { return newCommunityModel(viewFrame) },
		view.Chat:      func() tea.Model { return newChatModel(viewFrame, prof) },
		view.Settings:  func() tea.Model { return newSettingsModel(viewFrame) },
	})

	root := rootModel{
		handle:       handle,
		config:       userConfig,
		writer:       writer,
		page:         pageSplash,
		splash:       userConfig.SplashDuration(),
		frame:        viewFrame,
		profile:      prof,
		selector:     selector,
		header:       newHeaderModel(header.New(handle), prof),
		tabs:         newTabsModel(handle),
		status:       newStatusBarModel(handle, buildVersion),
		help:         newHelpModel(buildVersion, buildDate, buildCommit, configPath),
		profilePage:  newProfilePageModel(prof),
		tabBarHeight: 1,
		footerHeight: 1,
		version:      buildVersion,
	}

	if root.splash <= 0 {
		root.page = pageMain
	}

	return root
}

func (m rootModel) Init() tea.Cmd {
	if _, err := m.selector.Select(); err != nil {
		slog.Error("Cannot select initial view", slog.String("error", err.Error()))

		return tea.Quit
	}

	cmds := []tea.Cmd{tea.SetWindowTitle("hearth"), m.selector.Sync()}
	if m.page == pageSplash {
		cmds = append(cmds, splashAfter(m.splash))
	}

	return tea.Batch(cmds...)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	var cmds []tea.Cmd

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		m.frame.width = msg.Width
		m.frame.height = max(0, msg.Height-m.tabBarHeight-m.footerHeight)
	case splashDoneMsg:
		if m.page == pageSplash {
			m.page = pageMain
		}

		return m, nil
	case pushPageMsg:
		m.push(msg.page)

		return m, nil
	case popPageMsg:
		m.pop()

		return m, nil
	case safeAreaMsg:
		m.frame.safeAreaTop = int(msg)
		m.config.SafeAreaTop = int(msg)
	case config.Config:
		m.config = msg
		m.profile.apply(msg)
		m.frame.safeAreaTop = msg.SafeAreaTop
		cmds = append(cmds, setStatusMessage("Configuration reloaded", false))
	case saveConfigMsg:
		return m, m.save()
	case tabChangedMsg:
		slog.Debug("Tab changed", slog.String("tab", msg.tab.String()))
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.page == pageSplash {
			m.page = pageMain

			return m, nil
		}

		if m.capturingInput() {
			break
		}

		switch {
		case key.Matches(msg, input.Default.Quit):
			if m.page == pageMain {
				return m, tea.Quit
			}
		case key.Matches(msg, input.Default.Help):
			if m.page == pageHelp {
				m.pop()
			} else {
				m.push(pageHelp)
			}

			return m, nil
		case key.Matches(msg, input.Default.Profile):
			if m.page == pageMain {
				m.push(pageProfile)

				return m, nil
			}
		}
	}

	return m.propagate(inMsg, cmds...)
}

func (m *rootModel) push(next page) {
	if m.page == next {
		return
	}

	slog.Debug("Opening page", slog.String("page", next.String()))
	m.pageStack = append(m.pageStack, m.page)
	m.page = next
}

func (m *rootModel) pop() {
	if len(m.pageStack) == 0 {
		m.page = pageMain

		return
	}

	m.page = m.pageStack[len(m.pageStack)-1]
	m.pageStack = m.pageStack[:len(m.pageStack)-1]
}

func (m rootModel) save() tea.Cmd {
	if m.writer == nil {
		return setStatusMessage("No config file to save to", true)
	}

	if err := m.writer.Write(m.config); err != nil {
		slog.Error("Failed to save config", slog.String("error", err.Error()))

		return setStatusMessage("Failed to save settings", true)
	}

	return setStatusMessage("Settings saved", false)
}

func (m rootModel) propagate(msg tea.Msg, cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	_, isKey := msg.(tea.KeyMsg)
	_, isMouse := msg.(tea.MouseMsg)
	userInput := isKey || isMouse

	var cmd tea.Cmd
	m.status, cmd = m.status.Update(msg)
	cmds = append(cmds, cmd)

	switch {
	case !userInput:
		m.tabs, cmd = m.tabs.Update(msg)
		cmds = append(cmds, cmd, m.selector.Update(msg))
	case m.page == pageMain:
		tabChanged := false
		if !(isKey && m.capturingInput()) {
			m.tabs, cmd = m.tabs.Update(msg)
			tabChanged = cmd != nil
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.header.Update(msg))

		// A key or click consumed by the tab bar is not forwarded to the view it mounted.
		if tabChanged {
			cmds = append(cmds, m.selector.Sync())
		} else {
			cmds = append(cmds, m.selector.Update(msg))
		}
	case m.page == pageHelp:
		m.help, cmd = m.help.Update(msg)
		cmds = append(cmds, cmd)
	case m.page == pageProfile:
		m.profilePage, cmd = m.profilePage.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// inputCapturer is implemented by views that consume raw key presses while focused.
type inputCapturer interface {
	capturingInput() bool
}

// capturingInput reports whether the mounted view owns the keyboard, in which case
// global bindings must not fire.
func (m rootModel) capturingInput() bool {
	if m.page != pageMain {
		return false
	}

	capturer, ok := m.selector.Current().(inputCapturer)

	return ok && capturer.capturingInput()
}

func (m rootModel) isInitialized() bool {
	return m.height != 0 && m.width != 0
}

func (m rootModel) View() string {
	if !m.isInitialized() {
		return ""
	}

	if m.page == pageSplash {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, renderSplash(m.version))
	}

	footer := styles.FooterContainerStyle.Width(m.width).Render(m.status.View())
	pageHeight := max(0, m.height-m.footerHeight)

	switch m.page {
	case pageHelp:
		return lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.Place(m.width, pageHeight, lipgloss.Center, lipgloss.Center, m.help.View()), footer)
	case pageProfile:
		return lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.Place(m.width, pageHeight, lipgloss.Center, lipgloss.Center, m.profilePage.View()), footer)
	}

	hdr, err := m.header.render(m.width)
	if err != nil {
		slog.Error("Failed to render header", slog.String("error", err.Error()))

		return styles.StatusError.Render(err.Error())
	}

	content := overlayRows(m.selector.View(), hdr, m.frame.safeAreaTop, m.frame.height)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, content, m.tabs.View(), footer))
}

// logMsg is useful for debugging events. Tail the log file ~/.config/hearth/hearth.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch msg := inMsg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			return
		}
	case clearStatusMessageMsg:
		return
	}

	slog.Debug("tea.Msg", slog.Any("msg", inMsg))
}
