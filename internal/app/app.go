package app

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"tasktrack/internal/task"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	errorColor   = color.New(color.FgRed)
)

// App drives the numbered menu loop over the task store. Field validation
// (non-empty title) lives here, not in the engine.
type App struct {
	mgr    *task.Manager
	io     IO
	logger *log.Logger
}

// New creates a menu application over the given store.
func New(mgr *task.Manager, termIO IO, logger *log.Logger) *App {
	return &App{mgr: mgr, io: termIO, logger: logger}
}

// Run shows the menu until the user exits or input ends.
func (a *App) Run() error {
	for {
		if err := a.writeMenu(); err != nil {
			return err
		}

		choice, err := a.io.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			err = a.handleAdd()
		case "2":
			err = a.handleList()
		case "3":
			err = a.handleUpdateStatus()
		case "4":
			err = a.handleDelete()
		case "5":
			return nil
		default:
			err = a.io.WriteLine(errorColor.Sprint("Invalid choice!"))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (a *App) writeMenu() error {
	lines := []string{
		"",
		headingColor.Sprint("Task Manager"),
		"1. Add Task",
		"2. List Tasks",
		"3. Update Task Status",
		"4. Delete Task",
		"5. Exit",
	}
	for _, line := range lines {
		if err := a.io.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) handleAdd() error {
	if err := a.io.WriteLine("Enter task title:"); err != nil {
		return err
	}
	title, err := a.io.ReadLine()
	if err != nil {
		return err
	}
	if title == "" {
		return a.io.WriteLine(errorColor.Sprint("Title cannot be empty"))
	}

	if err := a.io.WriteLine("Enter task description:"); err != nil {
		return err
	}
	description, err := a.io.ReadLine()
	if err != nil {
		return err
	}

	if err := a.io.WriteLine("Enter task priority (1: Low, 2: Medium, 3: High):"); err != nil {
		return err
	}
	priorityStr, err := a.io.ReadLine()
	if err != nil {
		return err
	}
	priority := task.PriorityLow
	switch priorityStr {
	case "2":
		priority = task.PriorityMedium
	case "3":
		priority = task.PriorityHigh
	}

	id, err := a.mgr.Create(title, description, priority)
	if err != nil {
		a.logger.Error("create failed, memory and disk may diverge", "id", id, "err", err)
		return a.io.WriteLine(errorColor.Sprint(err.Error()))
	}
	return a.io.WriteLine(fmt.Sprintf("Task added with ID:%d", id))
}

func (a *App) handleList() error {
	for _, t := range a.mgr.ListSortedByPriority() {
		lines := []string{
			"",
			fmt.Sprintf("ID: %d", t.ID),
			fmt.Sprintf("Title: %s", t.Title),
			fmt.Sprintf("Description: %s", t.Description),
			fmt.Sprintf("Status: %s", t.Status),
			fmt.Sprintf("Priority: %s", t.Priority),
			fmt.Sprintf("Created: %s", t.CreatedAt),
		}
		for _, line := range lines {
			if err := a.io.WriteLine(line); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *App) handleUpdateStatus() error {
	if err := a.io.WriteLine("Enter task ID:"); err != nil {
		return err
	}
	id, err := a.readID()
	if err != nil {
		return err
	}

	if err := a.io.WriteLine("Enter new status (1: Todo, 2: InProgress, 3: Done):"); err != nil {
		return err
	}
	statusStr, err := a.io.ReadLine()
	if err != nil {
		return err
	}

	var status task.Status
	switch statusStr {
	case "1":
		status = task.StatusTodo
	case "2":
		status = task.StatusInProgress
	case "3":
		status = task.StatusDone
	default:
		return a.io.WriteLine(errorColor.Sprint("Invalid status!"))
	}

	updated, err := a.mgr.UpdateStatus(id, status)
	if err != nil {
		a.logger.Error("update failed, memory and disk may diverge", "id", id, "err", err)
		return a.io.WriteLine(errorColor.Sprint(err.Error()))
	}
	if !updated {
		return a.io.WriteLine("Task not found!")
	}
	return a.io.WriteLine("Task updated successfully!")
}

func (a *App) handleDelete() error {
	if err := a.io.WriteLine("Enter task ID to delete:"); err != nil {
		return err
	}
	id, err := a.readID()
	if err != nil {
		return err
	}

	removed, err := a.mgr.Delete(id)
	if err != nil {
		a.logger.Error("delete failed, memory and disk may diverge", "id", id, "err", err)
		return a.io.WriteLine(errorColor.Sprint(err.Error()))
	}
	if !removed {
		return a.io.WriteLine("Task not found!")
	}
	return a.io.WriteLine("Task deleted successfully!")
}

// readID parses a task id from input; anything unparsable becomes 0, which
// no task ever has, so the operation reports not-found.
func (a *App) readID() (int, error) {
	line, err := a.io.ReadLine()
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(line)
	if err != nil {
		return 0, nil
	}
	return id, nil
}
