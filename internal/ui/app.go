package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/planner/internal/form"
	"github.com/idilsaglam/planner/internal/model"
	"github.com/idilsaglam/planner/internal/store/jsonstore"
)

// appModel drives the three screens: home, the new-task form and the list.
// All task state lives in the collection handle; the store only serializes.
type appModel struct {
	store *jsonstore.Store
	tasks *model.Collection
	views *Switcher
	check *form.Validator

	list       list.Model
	titleInput textinput.Model
	dueInput   textinput.Model
	errs       map[form.Field]string
	focus      form.Field

	width  int
	height int
	status string

	// Undo support (single-level)
	canUndo   bool
	undoIndex int
	undoTask  *model.Task
}

// Run loads state, builds the program and blocks until quit.
func Run(st *jsonstore.Store) error {
	col, err := st.Load()
	if err != nil {
		return err
	}
	p := tea.NewProgram(newAppModel(st, col), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func newAppModel(st *jsonstore.Store, tasks *model.Collection) appModel {
	l := list.New(rowItems(tasks.All()), rowDelegate{}, 0, 0)
	l.Title = Header(tasks.All())
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")

	// Extend help with the app-level bindings
	newBind := key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new task"))
	homeBind := key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home"))
	toggleBind := key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	undoBind := key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
	extra := func() []key.Binding {
		return []key.Binding{newBind, homeBind, toggleBind, delBind, undoBind}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Task title..."
	ti.CharLimit = 200

	di := textinput.New()
	di.Prompt = "> "
	di.Placeholder = "YYYY-MM-DD"
	di.CharLimit = 10

	m := appModel{
		store:      st,
		tasks:      tasks,
		views:      NewSwitcher(ViewHome, ViewNew, ViewList),
		check:      form.New(),
		list:       l,
		titleInput: ti,
		dueInput:   di,
		errs:       map[form.Field]string{},
	}
	m.views.Show(ViewHome)
	return m
}

func (m appModel) Init() tea.Cmd { return textinput.Blink }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch {
		case m.views.Visible(ViewNew):
			return m.updateForm(msg)
		case m.views.Visible(ViewList):
			return m.updateList(msg)
		default:
			return m.updateHome(msg)
		}
	}

	// Everything else (blink ticks etc.) flows to the components.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	cmds = append(cmds, cmd)
	m.dueInput, cmd = m.dueInput.Update(msg)
	cmds = append(cmds, cmd)
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m appModel) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "n":
		m.showNew()
		return m, textinput.Blink
	case "l":
		m.showList()
		return m, nil
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.views.Show(ViewHome)
		return m, nil
	case "tab", "shift+tab", "up", "down":
		next := form.FieldTitle
		if m.focus == form.FieldTitle {
			next = form.FieldDueDate
		}
		m.focusField(next)
		return m, textinput.Blink
	case "enter":
		return m.submitForm()
	}
	var cmd tea.Cmd
	if m.focus == form.FieldDueDate {
		m.dueInput, cmd = m.dueInput.Update(msg)
	} else {
		m.titleInput, cmd = m.titleInput.Update(msg)
	}
	return m, cmd
}

// submitForm validates and, when everything passes, persists the new task and
// lands on the list. Invalid submissions only refill the error slots and move
// focus to the first offending field.
func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	vals := form.Values{
		Title:   strings.TrimSpace(m.titleInput.Value()),
		DueDate: strings.TrimSpace(m.dueInput.Value()),
	}
	res := m.check.Validate(vals)
	m.errs = res.Errors
	if !res.Valid {
		if f, ok := res.First(); ok {
			m.focusField(f)
		}
		return m, nil
	}

	if _, err := m.store.Create(m.tasks, vals.Title, vals.DueDate); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.titleInput.SetValue("")
	m.dueInput.SetValue("")
	m.status = ""
	m.showList()
	return m, nil
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the fuzzy filter is open, every key belongs to it.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "h":
		m.views.Show(ViewHome)
		return m, nil
	case "n":
		m.showNew()
		return m, textinput.Blink
	case " ":
		if it, ok := m.list.SelectedItem().(taskRow); ok {
			if _, err := m.store.Toggle(m.tasks, it.row.ID); err != nil {
				m.status = err.Error()
			} else {
				m.status = ""
				m.refreshList()
			}
		}
		return m, nil
	case "d":
		if it, ok := m.list.SelectedItem().(taskRow); ok {
			t, idx, err := m.store.Remove(m.tasks, it.row.ID)
			if err != nil {
				m.status = err.Error()
				return m, nil
			}
			tmp := t
			m.undoTask = &tmp
			m.undoIndex = idx
			m.canUndo = true
			m.status = ""
			m.refreshList()
		}
		return m, nil
	case "u":
		if m.canUndo && m.undoTask != nil {
			if err := m.store.Restore(m.tasks, m.undoIndex, *m.undoTask); err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.canUndo = false
			m.undoTask = nil
			m.status = ""
			m.refreshList()
		}
		return m, nil
	}

	// The empty list renders a placeholder instead of the list widget, so
	// there is nothing left for keys to drive.
	if m.tasks.Len() == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *appModel) showNew() {
	m.views.Show(ViewNew)
	m.focusField(form.FieldTitle)
}

// showList switches to the list view and rebuilds its rows from state; the
// list never refreshes on its own.
func (m *appModel) showList() {
	m.views.Show(ViewList)
	m.refreshList()
}

func (m *appModel) refreshList() {
	m.list.SetItems(rowItems(m.tasks.All()))
	m.list.Title = Header(m.tasks.All())
	// SetItems keeps the previous cursor, which points one past the end after
	// the bottom row is deleted; a stale cursor makes SelectedItem return nil.
	if idx := m.list.Index(); m.tasks.Len() > 0 && idx >= m.tasks.Len() {
		m.list.Select(m.tasks.Len() - 1)
	}
}

func (m *appModel) focusField(f form.Field) {
	m.focus = f
	if f == form.FieldDueDate {
		m.titleInput.Blur()
		m.dueInput.Focus()
		m.dueInput.CursorEnd()
		return
	}
	m.dueInput.Blur()
	m.titleInput.Focus()
	m.titleInput.CursorEnd()
}

func (m appModel) View() string {
	var content string
	if active, ok := m.views.Active(); ok {
		switch active {
		case ViewHome:
			content = m.viewHome()
		case ViewNew:
			content = m.viewForm()
		case ViewList:
			content = m.viewList()
		}
	}
	if m.status != "" {
		content += "\n\n" + errorStyle.Render("✖ "+m.status)
	}
	return borderStyle.Render(content)
}

func (m appModel) viewHome() string {
	tasks := m.tasks.All()
	d, p := Stats(tasks)
	lines := []string{
		titleStyle.Render("Planner"),
		"",
		Header(tasks),
		mutedStyle.Render(ProgressBar(d, d+p, 28)),
		"",
		accentStyle.Render("n") + "  new task",
		accentStyle.Render("l") + "  task list",
		accentStyle.Render("q") + "  quit",
	}
	return strings.Join(lines, "\n")
}

func (m appModel) viewForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New task"))
	b.WriteString("\n\n")
	b.WriteString("Title\n")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n")
	if msg, ok := m.errs[form.FieldTitle]; ok {
		b.WriteString(errorStyle.Render("✖ " + msg))
		b.WriteString("\n")
	}
	b.WriteString("\nDue date (YYYY-MM-DD)\n")
	b.WriteString(m.dueInput.View())
	b.WriteString("\n")
	if msg, ok := m.errs[form.FieldDueDate]; ok {
		b.WriteString(errorStyle.Render("✖ " + msg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter save • tab next field • esc cancel"))
	return b.String()
}

func (m appModel) viewList() string {
	if m.tasks.Len() == 0 {
		return Header(nil) + "\n\n" +
			mutedStyle.Render(EmptyListMessage) + "\n\n" +
			helpStyle.Render("n new task • h home • q quit")
	}
	return m.list.View()
}
