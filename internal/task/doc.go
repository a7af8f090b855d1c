// Package task implements the task store engine: an in-memory task map with
// monotonic id allocation, persisted in full to a JSON file on every
// mutation and reloaded once at construction.
//
// The tasks file is a single object keyed by string-encoded ids:
//
//	{
//	  "1": {
//	    "id": 1,
//	    "title": "Buy milk",
//	    "description": "2 liters",
//	    "status": "Todo",
//	    "created_at": "2024-01-01 09:30:00",
//	    "priority": "Low"
//	  }
//	}
//
// # Status Values
//
//   - "Todo": task is pending (initial state of every created task)
//   - "InProgress": task is being worked on
//   - "Done": task is complete
//
// # Priority Values
//
//   - "Low" < "Medium" < "High"; used only for display ordering
//
// # Errors
//
// A file that exists but cannot be parsed, or that fails the embedded JSON
// Schema, fails construction with *CorruptStateError. Failed reads or writes
// surface as *PersistenceError. A missing id on Delete or UpdateStatus is
// not an error; those operations return false.
//
// Write failures do not roll back the in-memory mutation: memory and disk
// diverge until the next successful save, and the returned error is the
// caller's signal to retry or abort.
package task
