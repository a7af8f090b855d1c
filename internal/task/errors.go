package task

import "fmt"

// CorruptStateError reports a tasks file that exists but cannot be parsed
// into the expected shape. It is raised only while loading at construction
// time and is fatal to store initialization.
type CorruptStateError struct {
	Path string // file that failed to load
	Err  error  // underlying parse or schema error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt tasks file %s: %s", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *CorruptStateError) Unwrap() error {
	return e.Err
}

// PersistenceError reports a failed read or write of the tasks file for
// environmental reasons (permissions, disk full, missing directory).
type PersistenceError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s tasks file %s: %s", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}
