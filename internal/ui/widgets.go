package ui

import "github.com/leighmacdonald/hearth/internal/ui/styles"

// container draws content inside a border with title set into the top edge.
func container(title string, width int, content string, active bool) string {
	if width <= 0 {
		return ""
	}

	base := styles.ContainerStyle
	if active {
		base = styles.ContainerStyleActive
	}

	return base.
		Border(styles.TitleBorder(styles.ContainerBorder, width, title)).
		Width(width).
		Render(content)
}
