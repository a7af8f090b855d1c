// Package cmd implements the CLI command structure for tasktrack.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"tasktrack/internal/app"
	"tasktrack/internal/config"
	"tasktrack/internal/logging"
	"tasktrack/internal/task"
	"tasktrack/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the tasktrack CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tasktrack", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	logger := logging.New(os.Stderr, cfg)

	// Determine the subcommand; with no args the menu runs.
	subcommand := "menu"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "menu":
		return menuCommand(cfg, logger, remainingArgs)
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "list":
		return listCommand(cfg, remainingArgs)
	case "add":
		return addCommand(cfg, remainingArgs)
	case "doctor":
		return doctorCommand(cfg, remainingArgs)
	case "config":
		fmt.Print(config.ExampleConfig())
		return nil
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// openStore constructs the task store from the configured path.
func openStore(cfg *config.Config) (*task.Manager, error) {
	mgr, err := task.NewManager(cfg.TasksFile)
	if err != nil {
		return nil, fmt.Errorf("opening task store: %w", err)
	}
	return mgr, nil
}

// menuCommand runs the line-prompt menu loop.
func menuCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	mgr, err := openStore(cfg)
	if err != nil {
		return err
	}
	return app.New(mgr, app.NewConsoleIO(), logger).Run()
}

// tuiCommand launches the full-screen interface.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	mgr, err := openStore(cfg)
	if err != nil {
		return err
	}
	return ui.Run(ctx, mgr, time.Duration(cfg.RefreshSeconds)*time.Second)
}

// listCommand prints every task sorted by priority.
func listCommand(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	mgr, err := openStore(cfg)
	if err != nil {
		return err
	}

	tasks := mgr.ListSortedByPriority()
	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}
	for _, t := range tasks {
		fmt.Printf("%3d  %-10s  %-10s  %s\n", t.ID, t.Priority, t.Status, t.Title)
	}
	return nil
}

// addCommand creates a single task without entering the menu.
func addCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasktrack add", flag.ContinueOnError)
	title := fs.String("title", "", "Task title (required)")
	description := fs.String("desc", "", "Task description")
	priorityStr := fs.String("priority", "low", "Task priority (low|medium|high)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	trimmed := strings.TrimSpace(*title)
	if trimmed == "" {
		return fmt.Errorf("title must not be empty")
	}

	var priority task.Priority
	switch strings.ToLower(*priorityStr) {
	case "low":
		priority = task.PriorityLow
	case "medium":
		priority = task.PriorityMedium
	case "high":
		priority = task.PriorityHigh
	default:
		return fmt.Errorf("invalid priority %q, must be low, medium, or high", *priorityStr)
	}

	mgr, err := openStore(cfg)
	if err != nil {
		return err
	}
	id, err := mgr.Create(trimmed, *description, priority)
	if err != nil {
		return err
	}
	fmt.Printf("Task added with ID:%d\n", id)
	return nil
}

// doctorCommand checks that the tasks file loads and validates.
func doctorCommand(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	fmt.Println("Tasktrack Doctor")
	fmt.Println("================")
	fmt.Println()

	fmt.Printf("Tasks file: %s\n", cfg.TasksFile)
	if _, err := os.Stat(cfg.TasksFile); os.IsNotExist(err) {
		fmt.Println("  ✅ Not created yet (a fresh store starts empty)")
		return nil
	}

	mgr, err := task.NewManager(cfg.TasksFile)
	if err != nil {
		fmt.Printf("  ❌ Error: %v\n", err)
		return err
	}
	fmt.Printf("  ✅ OK (%d tasks)\n", len(mgr.ListSortedByPriority()))
	return nil
}

func versionCommand() error {
	fmt.Printf("tasktrack %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `tasktrack - a single-user task tracker

Usage:
  tasktrack [flags] [command]

Commands:
  menu      Run the numbered menu loop (default)
  tui       Run the full-screen terminal interface
  list      Print tasks sorted by priority
  add       Add a single task (-title, -desc, -priority)
  doctor    Check that the tasks file loads and validates
  config    Print an example configuration file
  version   Show version
  help      Show this help

Flags:
`)
	fs.SetOutput(w)
	fs.PrintDefaults()
}
