package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/hearth/internal/ui/styles"
)

const splashArt = `
 _                    _   _
| |__   ___  __ _ _ __| |_| |__
| '_ \ / _ \/ _' | '__| __| '_ \
| | | |  __/ (_| | |  | |_| | | |
|_| |_|\___|\__,_|_|   \__|_| |_|
`

func renderSplash(version string) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		styles.Splash.Render(splashArt),
		styles.Subtle.Render(version))
}
