package task

import (
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// tasksSchemaDoc describes the on-disk tasks file: a single object keyed by
// string-encoded task ids, each value a full task record.
const tasksSchemaDoc = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "tasktrack tasks file",
  "type": "object",
  "patternProperties": {
    "^[0-9]+$": {
      "type": "object",
      "required": ["id", "title", "description", "status", "created_at", "priority"],
      "additionalProperties": false,
      "properties": {
        "id": {
          "type": "integer",
          "minimum": 1
        },
        "title": {
          "type": "string"
        },
        "description": {
          "type": "string"
        },
        "status": {
          "enum": ["Todo", "InProgress", "Done"]
        },
        "created_at": {
          "type": "string"
        },
        "priority": {
          "enum": ["Low", "Medium", "High"]
        }
      }
    }
  },
  "additionalProperties": false
}`

// tasksSchema is compiled once at init; the document is embedded so load
// validation never depends on an external schema file.
var tasksSchema = jsonschema.MustCompileString("tasks.schema.json", tasksSchemaDoc)

// validateShape checks a decoded tasks file against the embedded schema.
func validateShape(doc interface{}) error {
	return tasksSchema.Validate(doc)
}
