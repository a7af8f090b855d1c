package task

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPriorityOrdering(t *testing.T) {
	if !(PriorityLow < PriorityMedium && PriorityMedium < PriorityHigh) {
		t.Error("priority order must be Low < Medium < High")
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		tag     string
		want    Status
		wantErr bool
	}{
		{"Todo", StatusTodo, false},
		{"InProgress", StatusInProgress, false},
		{"Done", StatusDone, false},
		{"todo", 0, true},
		{"", 0, true},
		{"Blocked", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.tag)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseStatus(%q): expected error", tt.tag)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStatus(%q): %v", tt.tag, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q): got %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		tag     string
		want    Priority
		wantErr bool
	}{
		{"Low", PriorityLow, false},
		{"Medium", PriorityMedium, false},
		{"High", PriorityHigh, false},
		{"low", 0, true},
		{"Urgent", 0, true},
	}

	for _, tt := range tests {
		got, err := ParsePriority(tt.tag)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePriority(%q): expected error", tt.tag)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePriority(%q): %v", tt.tag, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePriority(%q): got %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestTaskWireFormat(t *testing.T) {
	in := Task{
		ID:          3,
		Title:       "Write report",
		Description: "Quarterly numbers",
		Status:      StatusInProgress,
		CreatedAt:   "2024-01-01 09:30:00",
		Priority:    PriorityHigh,
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// The enums travel as string tags, not integers.
	s := string(data)
	for _, want := range []string{`"status":"InProgress"`, `"priority":"High"`, `"created_at":"2024-01-01 09:30:00"`} {
		if !strings.Contains(s, want) {
			t.Errorf("wire form missing %s: %s", want, s)
		}
	}

	var out Task
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip: got %+v, want %+v", out, in)
	}
}

func TestTaskRejectsBadTags(t *testing.T) {
	var out Task
	err := json.Unmarshal([]byte(`{"id":1,"title":"T","description":"","status":"Started","created_at":"x","priority":"Low"}`), &out)
	if err == nil {
		t.Error("unmarshal accepted unknown status tag")
	}
	err = json.Unmarshal([]byte(`{"id":1,"title":"T","description":"","status":"Todo","created_at":"x","priority":2}`), &out)
	if err == nil {
		t.Error("unmarshal accepted numeric priority")
	}
}
