package app

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"tasktrack/internal/task"
)

func TestMain(m *testing.M) {
	// Keep ANSI sequences out of scripted output assertions.
	color.NoColor = true
	os.Exit(m.Run())
}

// scriptIO feeds canned input lines and records everything written.
type scriptIO struct {
	in  []string
	out []string
}

func (s *scriptIO) ReadLine() (string, error) {
	if len(s.in) == 0 {
		return "", io.EOF
	}
	line := s.in[0]
	s.in = s.in[1:]
	return line, nil
}

func (s *scriptIO) WriteLine(line string) error {
	s.out = append(s.out, line)
	return nil
}

func (s *scriptIO) contains(sub string) bool {
	for _, line := range s.out {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

func newTestApp(t *testing.T, input ...string) (*App, *scriptIO, *task.Manager) {
	t.Helper()
	mgr, err := task.NewManager(filepath.Join(t.TempDir(), "tasks.json"))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	script := &scriptIO{in: input}
	return New(mgr, script, log.New(io.Discard)), script, mgr
}

func TestRunExit(t *testing.T) {
	a, script, _ := newTestApp(t, "5")

	if err := a.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !script.contains("Task Manager") {
		t.Error("menu heading not written")
	}
}

func TestRunEndsOnEOF(t *testing.T) {
	a, _, _ := newTestApp(t)

	if err := a.Run(); err != nil {
		t.Fatalf("Run on exhausted input: %v", err)
	}
}

func TestAddTask(t *testing.T) {
	a, script, mgr := newTestApp(t,
		"1", "Buy milk", "2 liters", "1",
		"5",
	)

	if err := a.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !script.contains("Task added with ID:1") {
		t.Errorf("missing confirmation, output: %v", script.out)
	}

	tasks := mgr.ListSortedByPriority()
	if len(tasks) != 1 {
		t.Fatalf("task count: got %d, want 1", len(tasks))
	}
	if tasks[0].Title != "Buy milk" || tasks[0].Priority != task.PriorityLow {
		t.Errorf("stored task: %+v", tasks[0])
	}
}

func TestAddTaskEmptyTitle(t *testing.T) {
	a, script, mgr := newTestApp(t,
		"1", "",
		"5",
	)

	if err := a.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !script.contains("Title cannot be empty") {
		t.Errorf("missing rejection, output: %v", script.out)
	}
	if len(mgr.ListSortedByPriority()) != 0 {
		t.Error("empty-title task reached the store")
	}
}

func TestListTasks(t *testing.T) {
	a, script, _ := newTestApp(t,
		"1", "Buy milk", "2 liters", "1",
		"2",
		"5",
	)

	if err := a.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for _, want := range []string{"Title: Buy milk", "Description: 2 liters", "Status: Todo", "Priority: Low"} {
		if !script.contains(want) {
			t.Errorf("list output missing %q: %v", want, script.out)
		}
	}
}

func TestUpdateStatus(t *testing.T) {
	a, script, mgr := newTestApp(t,
		"1", "Task", "", "2",
		"3", "1", "2",
		"5",
	)

	if err := a.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !script.contains("Task updated successfully!") {
		t.Errorf("missing confirmation, output: %v", script.out)
	}
	if got := mgr.ListSortedByPriority()[0].Status; got != task.StatusInProgress {
		t.Errorf("status: got %s, want InProgress", got)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	a, script, _ := newTestApp(t,
		"3", "42", "3",
		"5",
	)

	if err := a.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !script.contains("Task not found!") {
		t.Errorf("missing not-found message, output: %v", script.out)
	}
}

func TestUpdateStatusInvalid(t *testing.T) {
	a, script, _ := newTestApp(t,
		"3", "1", "9",
		"5",
	)

	if err := a.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !script.contains("Invalid status!") {
		t.Errorf("missing rejection, output: %v", script.out)
	}
}

func TestDeleteTask(t *testing.T) {
	a, script, mgr := newTestApp(t,
		"1", "Task", "", "1",
		"4", "1",
		"4", "1",
		"5",
	)

	if err := a.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !script.contains("Task deleted successfully!") {
		t.Errorf("missing confirmation, output: %v", script.out)
	}
	// Second delete of the same id reports not-found.
	if !script.contains("Task not found!") {
		t.Errorf("missing not-found message, output: %v", script.out)
	}
	if len(mgr.ListSortedByPriority()) != 0 {
		t.Error("task still present after delete")
	}
}

func TestInvalidMenuChoice(t *testing.T) {
	a, script, _ := newTestApp(t,
		"9",
		"5",
	)

	if err := a.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !script.contains("Invalid choice!") {
		t.Errorf("missing rejection, output: %v", script.out)
	}
}
