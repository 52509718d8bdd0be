package main

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/hearth/internal/config"
	"github.com/leighmacdonald/hearth/internal/tab"
	"github.com/stretchr/testify/require"
)

// fakeUI exits once it has received one config update.
type fakeUI struct {
	handle   tab.Handle
	received chan tea.Msg
	seenTab  tab.Tab
}

func (f *fakeUI) Send(msg tea.Msg) {
	f.received <- msg
}

func (f *fakeUI) Run() error {
	current, err := f.handle.Active()
	if err != nil {
		return err
	}
	f.seenTab = current
	<-f.received

	return nil
}

func TestAppStart(t *testing.T) {
	updates := make(chan config.Config)
	app := NewApp(config.Config{Debug: true, StartTab: "chat"}, nil, updates)

	var (
		fake   *fakeUI
		handle tab.Handle
	)
	app.newUI = func(_ context.Context, h tab.Handle, _ config.Config, _ config.Writer) (UI, error) {
		handle = h
		fake = &fakeUI{handle: h, received: make(chan tea.Msg, 1)}

		return fake, nil
	}

	go func() { updates <- config.Config{Username: "reloaded"} }()

	require.NoError(t, app.Start(t.Context()))
	require.Equal(t, tab.Chat, fake.seenTab)
	require.Equal(t, "reloaded", app.config.Username)

	// The store is torn down with the app.
	_, err := handle.Active()
	require.ErrorIs(t, err, tab.ErrNoStoreBound)
}

func TestAppStartUIError(t *testing.T) {
	errBoom := errors.New("boom")
	app := NewApp(config.Config{}, nil, nil)
	app.newUI = func(_ context.Context, _ tab.Handle, _ config.Config, _ config.Writer) (UI, error) {
		return nil, errBoom
	}

	require.ErrorIs(t, app.Start(t.Context()), errBoom)
}

func TestAppStartInvalidTab(t *testing.T) {
	app := NewApp(config.Config{Debug: true, StartTab: "profile"}, nil, nil)
	require.ErrorIs(t, app.Start(t.Context()), tab.ErrInvalidTab)
}
