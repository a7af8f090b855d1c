// Package ui provides the full-screen terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tasktrack/internal/task"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	sectionStyle = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	priorityStyles = map[task.Priority]lipgloss.Style{
		task.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		task.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		task.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
)

// Run starts the full-screen interface over the given store.
func Run(ctx context.Context, mgr *task.Manager, refresh time.Duration) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	program := tea.NewProgram(newModel(mgr, refresh), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type model struct {
	mgr        *task.Manager
	tasks      []task.Task
	cursor     int
	refresh    time.Duration
	statusLine string
	showHelp   bool
}

type tickMsg time.Time

func newModel(mgr *task.Manager, refresh time.Duration) *model {
	m := &model{mgr: mgr, refresh: refresh}
	m.reload()
	return m
}

func (m *model) Init() tea.Cmd {
	return tickCmd(m.refresh)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		m.reload()
		return m, tickCmd(m.refresh)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "1":
		m.setStatus(task.StatusTodo)
	case "2":
		m.setStatus(task.StatusInProgress)
	case "3":
		m.setStatus(task.StatusDone)
	case "d":
		m.deleteSelected()
	case "r", "f5":
		m.reload()
		m.statusLine = ""
	case "h", "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("tasktrack") + "\n\n")

	if m.showHelp {
		writeHelp(&b)
		return b.String()
	}

	if len(m.tasks) == 0 {
		b.WriteString("No tasks available\n\n")
	} else {
		b.WriteString(sectionStyle.Render("Tasks") + "\n\n")
		for i, t := range m.tasks {
			b.WriteString(formatTaskLine(t, i == m.cursor) + "\n")
		}
		b.WriteString("\n")
		writeDetails(&b, m.selected())
	}

	if m.statusLine != "" {
		b.WriteString(errorStyle.Render(m.statusLine) + "\n\n")
	}
	b.WriteString(helpStyle.Render("up/down move | 1/2/3 set status | d delete | r refresh | h help | q quit") + "\n")
	return b.String()
}

func (m *model) selected() *task.Task {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return &m.tasks[m.cursor]
}

func (m *model) reload() {
	m.tasks = m.mgr.ListSortedByPriority()
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) setStatus(s task.Status) {
	t := m.selected()
	if t == nil {
		return
	}
	if _, err := m.mgr.UpdateStatus(t.ID, s); err != nil {
		m.statusLine = err.Error()
	} else {
		m.statusLine = ""
	}
	m.reload()
}

func (m *model) deleteSelected() {
	t := m.selected()
	if t == nil {
		return
	}
	if _, err := m.mgr.Delete(t.ID); err != nil {
		m.statusLine = err.Error()
	} else {
		m.statusLine = ""
	}
	m.reload()
}

func formatTaskLine(t task.Task, selected bool) string {
	icon := " "
	switch t.Status {
	case task.StatusInProgress:
		icon = ">"
	case task.StatusDone:
		icon = "x"
	}

	badge := priorityStyles[t.Priority].Render(t.Priority.String())
	line := fmt.Sprintf("  %s [%d] %s %s", icon, t.ID, badge, t.Title)
	if selected {
		return selectedStyle.Render(line)
	}
	return line
}

func writeDetails(b *strings.Builder, t *task.Task) {
	b.WriteString(sectionStyle.Render("Task Details") + "\n\n")
	if t == nil {
		b.WriteString("  No task selected.\n\n")
		return
	}
	b.WriteString(fmt.Sprintf("  Title: %s\n", t.Title))
	b.WriteString(fmt.Sprintf("  Description: %s\n", t.Description))
	b.WriteString(fmt.Sprintf("  Priority: %s\n", t.Priority))
	b.WriteString(fmt.Sprintf("  Status: %s\n", t.Status))
	b.WriteString(fmt.Sprintf("  Created: %s\n\n", t.CreatedAt))
}

func writeHelp(b *strings.Builder) {
	b.WriteString(sectionStyle.Render("Keyboard Shortcuts") + "\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  up/k, down/j Move selection\n")
	b.WriteString("  1            Mark selection Todo\n")
	b.WriteString("  2            Mark selection InProgress\n")
	b.WriteString("  3            Mark selection Done\n")
	b.WriteString("  d            Delete selection\n")
	b.WriteString("  r, F5        Refresh\n")
	b.WriteString("  h, ?         Toggle this help screen\n\n")
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
