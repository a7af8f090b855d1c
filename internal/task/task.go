// Package task owns the task collection and its JSON persistence.
package task

import (
	"encoding/json"
	"fmt"
)

// Status represents a task status.
type Status int

const (
	StatusTodo Status = iota
	StatusInProgress
	StatusDone
)

// statusTags maps Status values to their wire representation.
var statusTags = map[Status]string{
	StatusTodo:       "Todo",
	StatusInProgress: "InProgress",
	StatusDone:       "Done",
}

// String returns the wire tag for the status.
func (s Status) String() string {
	if tag, ok := statusTags[s]; ok {
		return tag
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalJSON encodes the status as its string tag.
func (s Status) MarshalJSON() ([]byte, error) {
	tag, ok := statusTags[s]
	if !ok {
		return nil, fmt.Errorf("unknown status %d", int(s))
	}
	return json.Marshal(tag)
}

// UnmarshalJSON decodes a status from its string tag.
func (s *Status) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	parsed, err := ParseStatus(tag)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStatus converts a wire tag into a Status.
func ParseStatus(tag string) (Status, error) {
	for s, t := range statusTags {
		if t == tag {
			return s, nil
		}
	}
	return 0, fmt.Errorf("invalid status %q, must be one of: Todo, InProgress, Done", tag)
}

// Priority represents task importance, ordered Low < Medium < High.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

var priorityTags = map[Priority]string{
	PriorityLow:    "Low",
	PriorityMedium: "Medium",
	PriorityHigh:   "High",
}

// String returns the wire tag for the priority.
func (p Priority) String() string {
	if tag, ok := priorityTags[p]; ok {
		return tag
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

// MarshalJSON encodes the priority as its string tag.
func (p Priority) MarshalJSON() ([]byte, error) {
	tag, ok := priorityTags[p]
	if !ok {
		return nil, fmt.Errorf("unknown priority %d", int(p))
	}
	return json.Marshal(tag)
}

// UnmarshalJSON decodes a priority from its string tag.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	parsed, err := ParsePriority(tag)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePriority converts a wire tag into a Priority.
func ParsePriority(tag string) (Priority, error) {
	for p, t := range priorityTags {
		if t == tag {
			return p, nil
		}
	}
	return 0, fmt.Errorf("invalid priority %q, must be one of: Low, Medium, High", tag)
}

// Task represents a single tracked unit of work.
type Task struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	CreatedAt   string   `json:"created_at"`
	Priority    Priority `json:"priority"`
}

// CreatedAtLayout is the timestamp format stored in created_at.
const CreatedAtLayout = "2006-01-02 15:04:05"
