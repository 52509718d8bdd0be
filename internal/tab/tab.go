// Package tab holds the active tab state shared by everything rendered inside the
// tab container.
package tab

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidTab is returned when a value outside the known set of tabs is supplied.
	ErrInvalidTab = errors.New("invalid tab")
	// ErrNoStoreBound is returned when tab state is accessed through a handle that was
	// never bound to a store, or whose store has been closed.
	ErrNoStoreBound = errors.New("tab state accessed outside of a store")
)

type Tab int

const (
	Home Tab = iota
	Community
	Chat
	Notifications
	Settings
)

var names = map[Tab]string{
	Home:          "home",
	Community:     "community",
	Chat:          "chat",
	Notifications: "notifications",
	Settings:      "settings",
}

// All returns every tab in display order.
func All() []Tab {
	return []Tab{Home, Community, Chat, Notifications, Settings}
}

func (t Tab) Valid() bool {
	return t >= Home && t <= Settings
}

func (t Tab) String() string {
	name, found := names[t]
	if !found {
		return fmt.Sprintf("tab(%d)", int(t))
	}

	return name
}

// Parse converts a tab name, as used in config files and key bindings, into a Tab.
func Parse(value string) (Tab, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for tab, name := range names {
		if name == value {
			return tab, nil
		}
	}

	return Home, errors.Join(ErrInvalidTab, fmt.Errorf("unknown tab name %q", value))
}
