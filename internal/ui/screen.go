package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/hearth/internal/layout"
)

// frame is the body area shared by every screen mounted inside the tab container.
// It is owned by the root model and read by screens at render time.
type frame struct {
	width       int
	height      int
	safeAreaTop int
	deriver     *layout.Deriver
}

func newFrame(safeAreaTop int) *frame {
	return &frame{safeAreaTop: safeAreaTop, deriver: layout.NewDeriver(layout.Terminal())}
}

// topOffset is the number of rows a screen keeps clear for the overlay header.
func (f *frame) topOffset() int {
	return f.deriver.Offset(f.safeAreaTop)
}

func (f *frame) contentHeight() int {
	return max(0, f.height-max(0, f.topOffset()))
}

// scrollScreen is the scrollable root every tab screen renders into.
type scrollScreen struct {
	frame    *frame
	viewport viewport.Model
	// reserved rows at the bottom of the frame that are not scrolled.
	reserved int
}

func newScrollScreen(f *frame) scrollScreen {
	return scrollScreen{frame: f, viewport: viewport.New(f.width, f.contentHeight())}
}

func (s scrollScreen) height() int {
	return max(0, s.frame.height-s.reserved)
}

func (s *scrollScreen) sync(content string) {
	s.viewport.Width = s.frame.width
	s.viewport.Height = max(0, s.frame.contentHeight()-s.reserved)
	s.viewport.SetContent(content)
}

func (s scrollScreen) update(msg tea.Msg, content string) (scrollScreen, tea.Cmd) {
	s.sync(content)

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)

	return s, cmd
}

// render pads the content below the header and fills the whole frame, so the header
// can be laid over the top rows without hiding anything.
func (s scrollScreen) render(content string) string {
	if s.frame.width <= 0 || s.height() <= 0 {
		return ""
	}

	s.sync(content)

	return lipgloss.NewStyle().
		PaddingTop(max(0, s.frame.topOffset())).
		Width(s.frame.width).
		Height(s.height()).
		MaxHeight(s.height()).
		Render(s.viewport.View())
}
