package task

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"
)

// Manager owns the in-memory task map, the id counter, and the backing file.
// All operations serialize on a single mutex; the engine itself is otherwise
// synchronous and performs its full disk write before returning.
type Manager struct {
	mu     sync.Mutex
	tasks  map[int]Task
	nextID int
	path   string
}

// NewManager creates a store backed by the file at path. If the file exists
// it is loaded in full and the id counter resumes at max(id)+1; a file that
// cannot be parsed or does not match the expected shape fails construction
// with a *CorruptStateError.
func NewManager(path string) (*Manager, error) {
	m := &Manager{
		tasks:  make(map[int]Task),
		nextID: 1,
		path:   path,
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return nil, &PersistenceError{Op: "read", Path: path, Err: err}
	}

	if err := m.load(); err != nil {
		return nil, err
	}
	return m, nil
}

// Path returns the backing file path.
func (m *Manager) Path() string {
	return m.path
}

// Create inserts a new task with status Todo and returns its assigned id.
// Ids are allocated monotonically and never reused, even across deletes.
// On a failed write the task stays in memory and the error reports the
// divergence from disk; the caller decides whether to retry or abort.
func (m *Manager) Create(title, description string, priority Priority) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := Task{
		ID:          m.nextID,
		Title:       title,
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   time.Now().Format(CreatedAtLayout),
		Priority:    priority,
	}

	m.tasks[t.ID] = t
	m.nextID++

	if err := m.save(); err != nil {
		return t.ID, err
	}
	return t.ID, nil
}

// Delete removes the task with the given id and persists. It returns false
// without error when the id is absent.
func (m *Manager) Delete(id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tasks[id]; !ok {
		return false, nil
	}
	delete(m.tasks, id)

	if err := m.save(); err != nil {
		return true, err
	}
	return true, nil
}

// UpdateStatus sets the status of the task with the given id and persists.
// It returns false without error when the id is absent.
func (m *Manager) UpdateStatus(id int, status Status) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[id]
	if !ok {
		return false, nil
	}
	t.Status = status
	m.tasks[id] = t

	if err := m.save(); err != nil {
		return true, err
	}
	return true, nil
}

// ListSortedByPriority returns a snapshot of every task ordered ascending by
// priority (Low, Medium, High). The relative order of tasks with equal
// priority is unspecified. The snapshot is a copy; mutating it does not
// touch the store and nothing is persisted.
func (m *Manager) ListSortedByPriority() []Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}

// save rewrites the entire tasks file from the in-memory map. Truncating and
// rewriting on every mutation is an intentional simplicity/durability
// tradeoff at personal-task-list scale, not a candidate for incremental
// writes.
func (m *Manager) save() error {
	raw := make(map[string]Task, len(m.tasks))
	for id, t := range m.tasks {
		raw[strconv.Itoa(id)] = t
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "write", Path: m.path, Err: err}
	}
	data = append(data, '\n')

	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return &PersistenceError{Op: "write", Path: m.path, Err: err}
	}
	return nil
}

// load reads the full tasks file, validates its shape against the embedded
// schema, and recomputes the id counter.
func (m *Manager) load() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return &PersistenceError{Op: "read", Path: m.path, Err: err}
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return &CorruptStateError{Path: m.path, Err: err}
	}
	if err := validateShape(doc); err != nil {
		return &CorruptStateError{Path: m.path, Err: err}
	}

	var raw map[string]Task
	if err := json.Unmarshal(data, &raw); err != nil {
		return &CorruptStateError{Path: m.path, Err: err}
	}

	tasks := make(map[int]Task, len(raw))
	nextID := 1
	for key, t := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			return &CorruptStateError{Path: m.path, Err: fmt.Errorf("non-numeric task key %q", key)}
		}
		if id != t.ID {
			return &CorruptStateError{Path: m.path, Err: fmt.Errorf("key %q does not match task id %d", key, t.ID)}
		}
		tasks[id] = t
		if id >= nextID {
			nextID = id + 1
		}
	}

	m.tasks = tasks
	m.nextID = nextID
	return nil
}
