package ui

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/hearth/internal/config"
	"github.com/leighmacdonald/hearth/internal/layout"
	"github.com/leighmacdonald/hearth/internal/tab"
	"github.com/leighmacdonald/hearth/internal/view"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

type memoryWriter struct {
	written []config.Config
	err     error
}

func (w *memoryWriter) Write(conf config.Config) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, conf)

	return nil
}

func (w *memoryWriter) Path() string {
	return "/tmp/hearth.yaml"
}

func runes(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

// runCmd executes cmd, giving up on commands that wait on timers.
func runCmd(cmd tea.Cmd) tea.Msg {
	result := make(chan tea.Msg, 1)
	go func() { result <- cmd() }()

	select {
	case msg := <-result:
		return msg
	case <-time.After(20 * time.Millisecond):
		return nil
	}
}

// send delivers msgs to model, then feeds back every message produced by the
// returned commands, like the bubbletea event loop does.
func send(model tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		var cmd tea.Cmd
		model, cmd = model.Update(msg)
		queue := []tea.Cmd{cmd}
		for len(queue) > 0 {
			next := queue[0]
			queue = queue[1:]
			if next == nil {
				continue
			}

			switch produced := runCmd(next).(type) {
			case nil, tea.QuitMsg:
			case tea.BatchMsg:
				queue = append(queue, produced...)
			default:
				var followup tea.Cmd
				model, followup = model.Update(produced)
				queue = append(queue, followup)
			}
		}
	}

	return model
}

func newTestRoot(t *testing.T, conf config.Config) (*tab.Store, rootModel) {
	t.Helper()

	store := tab.NewStore()
	t.Cleanup(store.Close)

	root := newRootModel(store.Handle(), conf, &memoryWriter{}, "v0.0.1", "today", "abcdef0123456")
	require.NotNil(t, root.Init())
	model := send(root, tea.WindowSizeMsg{Width: 100, Height: 30})

	return store, model.(rootModel)
}

func TestRootDefaultState(t *testing.T) {
	store, root := newTestRoot(t, config.Config{Username: "bob", Streak: 1200})

	require.Equal(t, pageMain, root.page)
	require.Equal(t, tab.Home, store.Active())
	selected, err := root.selector.Select()
	require.NoError(t, err)
	require.Equal(t, view.Dashboard, selected)

	rendered := root.View()
	require.Contains(t, rendered, "Good morning!")
	require.Contains(t, rendered, "1,200")
	require.Contains(t, rendered, "Welcome back, bob")
}

func TestRootTabKeys(t *testing.T) {
	store, root := newTestRoot(t, config.Config{Username: "bob"})

	model := send(root, runes("2"))
	require.Equal(t, tab.Community, store.Active())
	require.Contains(t, model.View(), "What's going on")

	model = send(model, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, tab.Chat, store.Active())

	model = send(model, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, tab.Settings, store.Active())
	rendered := model.View()
	require.Contains(t, rendered, "Settings")
	require.NotContains(t, rendered, "✦")

	model = send(model, runes("1"))
	require.Equal(t, tab.Home, store.Active())
	require.Contains(t, model.View(), "✦")
}

func TestRootChatDraftSurvivesSharedView(t *testing.T) {
	store, root := newTestRoot(t, config.Config{Username: "bob"})

	model := send(root, runes("3"))
	require.Equal(t, tab.Chat, store.Active())
	mounts := model.(rootModel).selector.Mounts()

	// Focus the input and type, global bindings must not fire while typing.
	model = send(model, runes("i"), runes("h"), runes("4"), runes("q"))
	require.True(t, model.(rootModel).capturingInput())
	require.Equal(t, tab.Chat, store.Active())

	model = send(model, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, model.(rootModel).capturingInput())

	model = send(model, runes("4"))
	require.Equal(t, tab.Notifications, store.Active())
	current := model.(rootModel)
	require.Equal(t, mounts, current.selector.Mounts())
	require.Equal(t, "h4q", current.selector.Current().(chatModel).draft())
	require.Contains(t, model.View(), "Notifications")

	// Leaving for another view drops the chat model.
	model = send(model, runes("1"), runes("3"))
	require.Empty(t, model.(rootModel).selector.Current().(chatModel).draft())
}

// messagesOf runs cmd and flattens any batches into the messages they produce.
func messagesOf(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	switch produced := runCmd(cmd).(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var msgs []tea.Msg
		for _, next := range produced {
			msgs = append(msgs, messagesOf(next)...)
		}

		return msgs
	default:
		return []tea.Msg{produced}
	}
}

func TestRootCaptureIsImmediate(t *testing.T) {
	store, root := newTestRoot(t, config.Config{Username: "bob"})
	model := send(root, runes("3"))

	// Keys arrive before any command returned by the compose key has run.
	model, _ = model.Update(runes("i"))
	require.True(t, model.(rootModel).capturingInput())

	model, _ = model.Update(runes("4"))
	require.Equal(t, tab.Chat, store.Active())

	model, cmd := model.Update(runes("q"))
	for _, msg := range messagesOf(cmd) {
		require.NotEqual(t, tea.QuitMsg{}, msg)
	}
	require.Equal(t, "4q", model.(rootModel).selector.Current().(chatModel).draft())
}

func TestRootChatSend(t *testing.T) {
	_, root := newTestRoot(t, config.Config{Username: "bob"})

	model := send(root, runes("3"), runes("i"), runes("hello"), tea.KeyMsg{Type: tea.KeyEnter})
	chat := model.(rootModel).selector.Current().(chatModel)
	require.Empty(t, chat.draft())
	last := chat.messages[len(chat.messages)-1]
	require.Equal(t, "hello", last.body)
	require.Equal(t, "bob", last.author)
	require.True(t, last.self)
	require.Contains(t, model.View(), "hello")
}

func TestRootSafeArea(t *testing.T) {
	_, root := newTestRoot(t, config.Config{SafeAreaTop: 2})
	require.Equal(t, layout.Offset(layout.Terminal(), 2), root.frame.topOffset())

	lines := strings.Split(root.View(), "\n")
	require.Contains(t, lines[2], "Good morning!")
	require.NotContains(t, lines[0], "Good morning!")

	model := send(root, runes("5"), tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 3, model.(rootModel).frame.safeAreaTop)
	require.Equal(t, 3, model.(rootModel).config.SafeAreaTop)

	model = send(model, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	writer := model.(rootModel).writer.(*memoryWriter)
	require.Len(t, writer.written, 1)
	require.Equal(t, 3, writer.written[0].SafeAreaTop)
}

func TestRootSaveFailure(t *testing.T) {
	store := tab.NewStore()
	writer := &memoryWriter{err: errors.New("disk full")}
	root := newRootModel(store.Handle(), config.Config{}, writer, "v", "d", "c")

	model := send(root, tea.WindowSizeMsg{Width: 80, Height: 20}, saveConfigMsg{})
	require.Equal(t, "Failed to save settings", model.(rootModel).status.statusMsg)
	require.True(t, model.(rootModel).status.statusError)
}

func TestRootPages(t *testing.T) {
	_, root := newTestRoot(t, config.Config{Username: "bob", Streak: 3})

	model := send(root, runes("p"))
	require.Equal(t, pageProfile, model.(rootModel).page)
	require.Contains(t, model.View(), "3 days")

	model = send(model, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, pageMain, model.(rootModel).page)

	model = send(model, runes("?"))
	require.Equal(t, pageHelp, model.(rootModel).page)
	require.Contains(t, model.View(), "abcdef01")

	// Quit is ignored outside of the main page.
	_, cmd := model.Update(runes("q"))
	require.Nil(t, cmd)

	model = send(model, runes("?"))
	require.Equal(t, pageMain, model.(rootModel).page)
}

func TestRootSplash(t *testing.T) {
	store := tab.NewStore()
	root := newRootModel(store.Handle(), config.Config{SplashMs: 5000}, nil, "v9", "d", "c")
	require.Equal(t, pageSplash, root.page)

	model := send(root, tea.WindowSizeMsg{Width: 80, Height: 20})
	require.Contains(t, model.View(), "v9")

	model = send(model, splashDoneMsg{})
	require.Equal(t, pageMain, model.(rootModel).page)
}

func TestRootConfigReload(t *testing.T) {
	_, root := newTestRoot(t, config.Config{Username: "bob"})

	model := send(root, config.Config{Username: "alice", Streak: 7, SafeAreaTop: 1})
	current := model.(rootModel)
	require.Equal(t, "alice", current.profile.username)
	require.Equal(t, 1, current.frame.safeAreaTop)
	require.Equal(t, "Configuration reloaded", current.status.statusMsg)
	require.Contains(t, model.View(), "alice")
}

func TestNewRequiresBoundStore(t *testing.T) {
	_, err := New(t.Context(), tab.Handle{}, config.Config{}, nil, "v", "d", "c")
	require.ErrorIs(t, err, tab.ErrNoStoreBound)
}

func TestHeaderUnboundRendersNothing(t *testing.T) {
	root := newRootModel(tab.Handle{}, config.Config{}, nil, "v", "d", "c")
	_, err := root.header.render(80)
	require.ErrorIs(t, err, tab.ErrNoStoreBound)
}

func TestOverlayRows(t *testing.T) {
	require.Equal(t, "a\nH\nc", overlayRows("a\nb\nc\nd", "H", 1, 3))
	require.Equal(t, "H\n\n", overlayRows("", "H", 0, 3))
	require.Equal(t, "a\nb", overlayRows("a\nb", "H", 5, 2))
	require.Empty(t, overlayRows("a", "H", 0, 0))
}
