package ui

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/planner/internal/model"
)

// Panel prints lines inside a framed box using the current theme.
func Panel(lines []string) {
	fmt.Println(borderStyle.Render(strings.Join(lines, "\n")))
}

// ProgressBar renders a completion bar with a count suffix.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 28
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf(" %d/%d", done, total)
}

// Header builds the counts line shared by the list view and `ls`.
func Header(tasks []model.Task) string {
	d, p := Stats(tasks)
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Tasks"),
		successStyle.Render("✔"), d,
		pendingStyle.Render("•"), p,
		accentStyle.Render("Total"), len(tasks),
	)
}

// Stats counts completed vs pending tasks.
func Stats(tasks []model.Task) (done, pending int) {
	for _, t := range tasks {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
