package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"

	"github.com/idilsaglam/planner/internal/model"
)

func TestBuildRowsEmpty(t *testing.T) {
	if rows := BuildRows(nil); len(rows) != 0 {
		t.Fatalf("BuildRows(nil): got %d rows, want 0", len(rows))
	}
	if rows := BuildRows([]model.Task{}); len(rows) != 0 {
		t.Fatalf("BuildRows(empty): got %d rows, want 0", len(rows))
	}
}

func TestBuildRowsSingleTask(t *testing.T) {
	rows := BuildRows([]model.Task{
		{ID: 1, Title: "Pay rent", DueDate: "2025-01-01", Completed: false},
	})
	if len(rows) != 1 {
		t.Fatalf("rows: got %d, want 1", len(rows))
	}
	r := rows[0]
	if r.ID != 1 {
		t.Errorf("ID: got %d, want 1", r.ID)
	}
	if r.Title != "Pay rent" {
		t.Errorf("Title: got %q, want %q", r.Title, "Pay rent")
	}
	if r.Due != "1/1/2025" {
		t.Errorf("Due: got %q, want %q", r.Due, "1/1/2025")
	}
	if r.Done {
		t.Error("Done: got true, want false")
	}
}

func TestBuildRowsKeepsTitleVerbatim(t *testing.T) {
	title := "  <b>Pay & rent</b>  "
	rows := BuildRows([]model.Task{{ID: 1, Title: title, DueDate: "2025-01-01"}})
	if rows[0].Title != title {
		t.Errorf("Title: got %q, want %q", rows[0].Title, title)
	}
}

func TestBuildRowsIsIdempotent(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Title: "a", DueDate: "2025-01-01"},
		{ID: 2, Title: "b", DueDate: "2025-12-31", Completed: true},
	}
	first := BuildRows(tasks)
	second := BuildRows(tasks)
	if len(first) != len(second) {
		t.Fatalf("row counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("row %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestShortDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-01-01", "1/1/2025"},
		{"2025-12-31", "12/31/2025"},
		{"2030-06-05", "6/5/2030"},
		{"garbage", "garbage"},
		{"2025-13-40", "2025-13-40"},
	}
	for _, tt := range tests {
		if got := ShortDate(tt.in); got != tt.want {
			t.Errorf("ShortDate(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLinesEmptyShowsPlaceholder(t *testing.T) {
	lines := Lines(nil)
	if len(lines) != 1 {
		t.Fatalf("lines: got %d, want 1", len(lines))
	}
	if !strings.Contains(lines[0], EmptyListMessage) {
		t.Errorf("placeholder missing: got %q", lines[0])
	}
}

func TestLinesCarryTitleDateAndID(t *testing.T) {
	rows := BuildRows([]model.Task{
		{ID: 7, Title: "Pay rent", DueDate: "2025-01-01"},
	})
	lines := Lines(rows)
	if len(lines) != 1 {
		t.Fatalf("lines: got %d, want 1", len(lines))
	}
	for _, want := range []string{"Pay rent", "1/1/2025", "#7"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line missing %q: got %q", want, lines[0])
		}
	}
}

func TestGroupedLines(t *testing.T) {
	rows := []Row{
		{ID: 1, Title: "open", Due: "1/1/2025"},
		{ID: 2, Title: "closed", Due: "1/2/2025", Done: true},
	}
	joined := strings.Join(GroupedLines(rows), "\n")
	pendingAt := strings.Index(joined, "Pending")
	openAt := strings.Index(joined, "open")
	doneAt := strings.Index(joined, "Done")
	closedAt := strings.Index(joined, "closed")
	if pendingAt < 0 || openAt < 0 || doneAt < 0 || closedAt < 0 {
		t.Fatalf("sections missing:\n%s", joined)
	}
	if !(pendingAt < openAt && openAt < doneAt && doneAt < closedAt) {
		t.Errorf("section order wrong:\n%s", joined)
	}
}

func TestRowDelegateRender(t *testing.T) {
	items := rowItems([]model.Task{
		{ID: 1, Title: "Pay rent", DueDate: "2025-01-01"},
		{ID: 2, Title: "Call bank", DueDate: "2025-02-01", Completed: true},
	})
	l := list.New(items, rowDelegate{}, 60, 20)

	var b strings.Builder
	rowDelegate{}.Render(&b, l, 0, items[0])
	out := b.String()
	for _, want := range []string{"Pay rent", "due 1/1/2025", "#1", ">"} {
		if !strings.Contains(out, want) {
			t.Errorf("selected row missing %q: got %q", want, out)
		}
	}

	b.Reset()
	rowDelegate{}.Render(&b, l, 1, items[1])
	out = b.String()
	for _, want := range []string{"Call bank", "due 2/1/2025", "#2"} {
		if !strings.Contains(out, want) {
			t.Errorf("second row missing %q: got %q", want, out)
		}
	}
	if strings.Contains(out, ">") {
		t.Errorf("unselected row carries the cursor: got %q", out)
	}
}
