package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/planner/internal/model"
)

// EmptyListMessage is shown when the collection has no tasks.
const EmptyListMessage = "No tasks yet."

// Row is one rendered task line. The id rides along so the delete action can
// pick it off the selected row.
type Row struct {
	ID    int
	Title string
	Due   string
	Done  bool
}

// BuildRows projects tasks into display rows, one per task in collection
// order. Pure and idempotent; safe to call on every view switch.
func BuildRows(tasks []model.Task) []Row {
	rows := make([]Row, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, Row{ID: t.ID, Title: t.Title, Due: ShortDate(t.DueDate), Done: t.Completed})
	}
	return rows
}

// ShortDate renders an ISO date in the short numeric style, e.g. 1/2/2025.
// Values that do not parse are shown verbatim.
func ShortDate(iso string) string {
	t, err := time.Parse(model.DateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format("1/2/2006")
}

// Lines renders rows as flat display lines for non-interactive output.
func Lines(rows []Row) []string {
	if len(rows) == 0 {
		return []string{mutedStyle.Render(EmptyListMessage)}
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		box := mutedStyle.Render(boxUnchecked)
		title := r.Title
		if r.Done {
			box = successStyle.Render(boxChecked)
			title = doneStyle.Render(title)
		}
		out = append(out, fmt.Sprintf("%s %s  %s", box, title,
			mutedStyle.Render(fmt.Sprintf("due %s  #%d", r.Due, r.ID))))
	}
	return out
}

// GroupedLines splits rows into pending and done sections.
func GroupedLines(rows []Row) []string {
	var pend, done []Row
	for _, r := range rows {
		if r.Done {
			done = append(done, r)
		} else {
			pend = append(pend, r)
		}
	}
	var lines []string
	lines = append(lines, accentStyle.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, mutedStyle.Render("(none)"))
	} else {
		lines = append(lines, Lines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, accentStyle.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, mutedStyle.Render("(none)"))
	} else {
		lines = append(lines, Lines(done)...)
	}
	return lines
}

// taskRow adapts Row to bubbles/list.Item.
type taskRow struct {
	row Row
}

func (i taskRow) Title() string       { return i.row.Title }
func (i taskRow) Description() string { return "" }
func (i taskRow) FilterValue() string { return i.row.Title }

func rowItems(tasks []model.Task) []list.Item {
	rows := BuildRows(tasks)
	items := make([]list.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, taskRow{row: r})
	}
	return items
}

// rowDelegate renders one task per line.
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(taskRow)

	box := mutedStyle.Render(boxUnchecked)
	title := it.row.Title
	if it.row.Done {
		box = successStyle.Render(boxChecked)
		title = doneStyle.Render(title)
	}
	meta := mutedStyle.Render(fmt.Sprintf("due %s  #%d", it.row.Due, it.row.ID))

	line := fmt.Sprintf("%s %s  %s", box, title, meta)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}
