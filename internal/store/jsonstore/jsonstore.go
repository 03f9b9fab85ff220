package jsonstore

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/idilsaglam/planner/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; fine for a local single-user app.

const dataFileName = "tasks.json"

// ErrNotFound is returned when no task carries the requested id.
var ErrNotFound = errors.New("task not found")

//go:embed tasks.schema.json
var schemaJSON string

// The schema ships inside the binary, so compilation cannot fail at runtime.
var schema = jsonschema.MustCompileString(dataFileName, schemaJSON)

// Store reads and writes the whole task collection under one fixed file name
// inside its data directory. It never retains a collection of its own.
type Store struct {
	path string
	log  *log.Logger
}

// New binds a store to dir, creating the directory if needed.
func New(dir string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	return &Store{path: filepath.Join(dir, dataFileName), log: logger}, nil
}

// Path reports the file the store reads and writes.
func (s *Store) Path() string { return s.path }

// Load reads the collection. A missing file is an empty collection; anything
// unreadable or out of shape is an error, never a silent reset.
func (s *Store) Load() (*model.Collection, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.Debug("no data file yet", "path", s.path)
			return model.NewCollection(nil), nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	if err := checkShape(b); err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	var tasks []model.Task
	if err := json.Unmarshal(b, &tasks); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	s.log.Debug("loaded tasks", "count", len(tasks), "path", s.path)
	return model.NewCollection(tasks), nil
}

// Save serializes the entire collection and rewrites the file. No partial
// updates, no versioning. The document is checked against the same schema
// Load enforces, so a file this store writes is always loadable.
func (s *Store) Save(c *model.Collection) error {
	b, err := json.MarshalIndent(c.All(), "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := checkShape(b); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	s.log.Debug("saved tasks", "count", c.Len(), "path", s.path)
	return nil
}

// Create allocates the next id, appends and persists. If the write fails the
// append is rolled back so memory stays in step with disk; the id counter is
// not rewound.
func (s *Store) Create(c *model.Collection, title, dueDate string) (model.Task, error) {
	t := c.Add(title, dueDate)
	if err := s.Save(c); err != nil {
		c.Drop(t.ID)
		return model.Task{}, err
	}
	return t, nil
}

// Toggle flips completion for id and persists.
func (s *Store) Toggle(c *model.Collection, id int) (model.Task, error) {
	t, ok := c.Toggle(id)
	if !ok {
		return model.Task{}, ErrNotFound
	}
	if err := s.Save(c); err != nil {
		c.Toggle(id)
		return model.Task{}, err
	}
	return t, nil
}

// Remove drops id and persists. The removed task and its former index come
// back so the caller can offer undo.
func (s *Store) Remove(c *model.Collection, id int) (model.Task, int, error) {
	t, idx, ok := c.Drop(id)
	if !ok {
		return model.Task{}, 0, ErrNotFound
	}
	if err := s.Save(c); err != nil {
		c.Insert(idx, t)
		return model.Task{}, 0, err
	}
	return t, idx, nil
}

// Restore re-inserts a previously removed task at its former position.
func (s *Store) Restore(c *model.Collection, index int, t model.Task) error {
	c.Insert(index, t)
	if err := s.Save(c); err != nil {
		c.Drop(t.ID)
		return err
	}
	return nil
}

// checkShape validates the raw document against the embedded schema before
// decoding into typed records, so a hand-edited file fails with a clear error.
func checkShape(b []byte) error {
	var doc interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid task data: %w", err)
	}
	return nil
}
