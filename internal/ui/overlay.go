package ui

import "strings"

// overlayRows lays top over the rows of base starting at row, padding or trimming base
// to exactly height rows.
func overlayRows(base string, top string, row int, height int) string {
	if height <= 0 {
		return ""
	}

	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	for idx, line := range strings.Split(top, "\n") {
		target := row + idx
		if target < 0 || target >= height {
			continue
		}
		lines[target] = line
	}

	return strings.Join(lines, "\n")
}
