// Package header derives the content of the fixed overlay header from the active tab.
package header

import "github.com/leighmacdonald/hearth/internal/tab"

const captionSettings = "Settings"

// Caption maps a tab to the header caption. Chat and Notifications share a caption.
func Caption(current tab.Tab) string {
	switch current {
	case tab.Home:
		return "Good morning!"
	case tab.Community:
		return "What's going on"
	case tab.Chat, tab.Notifications:
		return "Notifications"
	case tab.Settings:
		return captionSettings
	default:
		return ""
	}
}

// ShowDecorativeMark is false only for the settings caption.
func ShowDecorativeMark(caption string) bool {
	return caption != captionSettings
}

// Header reads the active tab through its handle and caches the caption for the last
// tab value it saw.
type Header struct {
	handle      tab.Handle
	lastTab     tab.Tab
	caption     string
	derived     bool
	derivations int
}

func New(handle tab.Handle) *Header {
	return &Header{handle: handle}
}

func (h *Header) Caption() (string, error) {
	current, err := h.handle.Active()
	if err != nil {
		return "", err
	}

	if !h.derived || current != h.lastTab {
		h.lastTab = current
		h.caption = Caption(current)
		h.derived = true
		h.derivations++
	}

	return h.caption, nil
}

func (h *Header) ShowDecorativeMark() (bool, error) {
	caption, err := h.Caption()
	if err != nil {
		return false, err
	}

	return ShowDecorativeMark(caption), nil
}

// Derivations reports how many times the caption was recomputed.
func (h *Header) Derivations() int {
	return h.derivations
}
