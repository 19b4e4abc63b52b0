package ui

import (
	"fmt"
	"strings"
)

const minBarWidth = 5

// ProgressBar draws done/total as a bar of width cells followed by a
// "done/total pct%" label. The filled part uses the success style.
func (t Theme) ProgressBar(done, total, width int) string {
	width = max(width, minBarWidth)
	done = min(max(done, 0), max(total, 0))

	filled, pct := 0, 0
	if total > 0 {
		filled = done * width / total
		pct = done * 100 / total
	}
	bar := t.Success.Render(strings.Repeat("█", filled)) +
		t.Muted.Render(strings.Repeat("░", width-filled))
	return bar + t.Muted.Render(fmt.Sprintf(" %d/%d %3d%%", done, total, pct))
}

// Panel frames lines with the theme border.
func (t Theme) Panel(lines []string) string {
	return t.Frame.Render(strings.Join(lines, "\n"))
}
