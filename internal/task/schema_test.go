package task

import (
	"encoding/json"
	"testing"
)

func decodeDoc(t *testing.T, s string) interface{} {
	t.Helper()
	var doc interface{}
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		t.Fatalf("fixture is not valid JSON: %v", err)
	}
	return doc
}

func TestValidateShape(t *testing.T) {
	valid := `{
	  "1": {
	    "id": 1,
	    "title": "Buy milk",
	    "description": "2 liters",
	    "status": "Todo",
	    "created_at": "2024-01-01 09:30:00",
	    "priority": "Low"
	  }
	}`

	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{"valid file", valid, false},
		{"empty object", `{}`, false},
		{"array top level", `[]`, true},
		{"non-numeric key", `{"one": {"id": 1, "title": "T", "description": "", "status": "Todo", "created_at": "x", "priority": "Low"}}`, true},
		{"missing priority", `{"1": {"id": 1, "title": "T", "description": "", "status": "Todo", "created_at": "x"}}`, true},
		{"extra field", `{"1": {"id": 1, "title": "T", "description": "", "status": "Todo", "created_at": "x", "priority": "Low", "tags": []}}`, true},
		{"bad status", `{"1": {"id": 1, "title": "T", "description": "", "status": "doing", "created_at": "x", "priority": "Low"}}`, true},
		{"zero id", `{"0": {"id": 0, "title": "T", "description": "", "status": "Todo", "created_at": "x", "priority": "Low"}}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateShape(decodeDoc(t, tt.doc))
			if tt.wantErr && err == nil {
				t.Error("schema accepted invalid document")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("schema rejected valid document: %v", err)
			}
		})
	}
}
