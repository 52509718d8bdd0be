package main

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/hearth/internal/config"
	"github.com/leighmacdonald/hearth/internal/tab"
	"github.com/leighmacdonald/hearth/internal/ui"
	"golang.org/x/sync/errgroup"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// uiFactory builds the ui bound to the app's tab store.
type uiFactory func(ctx context.Context, handle tab.Handle, conf config.Config, writer config.Writer) (UI, error)

func newProgramUI(ctx context.Context, handle tab.Handle, conf config.Config, writer config.Writer) (UI, error) {
	program, err := ui.New(ctx, handle, conf, writer, BuildVersion, BuildDate, BuildCommit)
	if err != nil {
		return nil, err
	}

	return program, nil
}

// App is the main application container. It owns the tab store for the lifetime of
// the ui and routes configuration changes into it.
type App struct {
	config        config.Config
	writer        config.Writer
	configUpdates <-chan config.Config
	newUI         uiFactory
}

func NewApp(conf config.Config, writer config.Writer, configUpdates <-chan config.Config) *App {
	return &App{
		config:        conf,
		writer:        writer,
		configUpdates: configUpdates,
		newUI:         newProgramUI,
	}
}

// Start creates the tab store, runs the ui until it exits and tears the store down.
func (app *App) Start(ctx context.Context) error {
	store := tab.NewStore()
	defer store.Close()

	unsubscribe := store.Subscribe(func(next tab.Tab) {
		slog.Info("Active tab changed", slog.String("tab", next.String()))
	})
	defer unsubscribe()

	initial, errTab := app.config.InitialTab()
	if errTab != nil {
		return errTab
	}

	if initial != tab.Home {
		if err := store.SetActive(initial); err != nil {
			return err
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	program, errUI := app.newUI(runCtx, store.Handle(), app.config, app.writer)
	if errUI != nil {
		return errUI
	}

	group, groupCtx := errgroup.WithContext(runCtx)
	group.Go(func() error {
		defer cancel()

		return program.Run()
	})
	group.Go(func() error {
		app.relayConfig(groupCtx, program)

		return nil
	})

	return group.Wait()
}

// relayConfig forwards reloaded configuration to the ui.
func (app *App) relayConfig(ctx context.Context, program UI) {
	for {
		select {
		case conf := <-app.configUpdates:
			app.config = conf
			program.Send(conf)
		case <-ctx.Done():
			return
		}
	}
}
