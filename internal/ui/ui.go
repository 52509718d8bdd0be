package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/hearth/internal/config"
	"github.com/leighmacdonald/hearth/internal/tab"
	zone "github.com/lrstanley/bubblezone"
)

const (
	clearMessageTimeout = time.Second * 5
	defaultFPS          = 30
)

var ErrUIExit = errors.New("ui error returned")

type UI struct {
	program *tea.Program
}

// New builds the ui program. The handle must be bound to the app's tab store, an unbound
// handle fails before anything is rendered.
func New(ctx context.Context, handle tab.Handle, userConfig config.Config, writer config.Writer,
	buildVersion string, buildDate string, buildCommit string,
) (*UI, error) {
	if !handle.Bound() {
		return nil, tab.ErrNoStoreBound
	}

	zone.NewGlobal()

	fps := userConfig.FPS
	if fps <= 0 {
		fps = defaultFPS
	}

	return &UI{
		program: tea.NewProgram(
			newRootModel(handle, userConfig, writer, buildVersion, buildDate, buildCommit),
			tea.WithMouseCellMotion(),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
			tea.WithFPS(fps)),
	}, nil
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
