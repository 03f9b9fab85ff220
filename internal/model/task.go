package model

// DateLayout is the storage format for due dates.
const DateLayout = "2006-01-02"

// Task is the domain model for a single planner entry.
type Task struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	DueDate   string `json:"dueDate"` // calendar date, YYYY-MM-DD
	Completed bool   `json:"completed"`
}

// Collection is the in-memory task list plus the id counter. Insertion order
// is display order. The counter only moves forward, so an id handed out once
// is never handed out again, even after a removal.
type Collection struct {
	tasks  []Task
	nextID int
}

// NewCollection wraps loaded tasks and derives the next free id.
func NewCollection(tasks []Task) *Collection {
	if tasks == nil {
		tasks = []Task{}
	}
	next := 1
	for _, t := range tasks {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return &Collection{tasks: tasks, nextID: next}
}

// All returns the tasks in display order. Callers treat it as read-only.
func (c *Collection) All() []Task { return c.tasks }

func (c *Collection) Len() int { return len(c.tasks) }

// NextID reports the id the next Add will use.
func (c *Collection) NextID() int { return c.nextID }

// Add builds a task with the next free id and appends it.
func (c *Collection) Add(title, dueDate string) Task {
	t := Task{ID: c.nextID, Title: title, DueDate: dueDate}
	c.nextID++
	c.tasks = append(c.tasks, t)
	return t
}

// Toggle flips completion for the task with the given id.
func (c *Collection) Toggle(id int) (Task, bool) {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks[i].Completed = !c.tasks[i].Completed
			return c.tasks[i], true
		}
	}
	return Task{}, false
}

// Drop removes the task with the given id and returns it along with its
// former index. The id counter is not rewound.
func (c *Collection) Drop(id int) (Task, int, bool) {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			t := c.tasks[i]
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			return t, i, true
		}
	}
	return Task{}, 0, false
}

// Insert puts a task back at index, clamping out-of-range values. Used to
// restore a dropped task; the counter is bumped if the id would collide.
func (c *Collection) Insert(index int, t Task) {
	if index < 0 {
		index = 0
	}
	if index > len(c.tasks) {
		index = len(c.tasks)
	}
	c.tasks = append(c.tasks[:index], append([]Task{t}, c.tasks[index:]...)...)
	if t.ID >= c.nextID {
		c.nextID = t.ID + 1
	}
}
