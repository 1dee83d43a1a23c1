// Package snapshot defines the persisted wire form of the task sequence.
//
// A snapshot is a JSON array of task objects carrying exactly the fields
// id, title, isCompleted and isSelected. Decode validates raw bytes
// against an embedded CUE schema before unmarshalling, so bytes that do
// not match the expected shape are rejected whole rather than
// half-parsed.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"slate/internal/task"
)

// Encode serializes the task sequence to its persisted JSON form.
// HTML escaping is disabled so titles round-trip byte for byte.
func Encode(tasks []task.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tasks); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses persisted bytes back into a task sequence.
//
// Malformed JSON, shape violations and duplicate ids all fail decoding.
// Empty input decodes to an empty sequence.
func Decode(data []byte) ([]task.Task, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []task.Task{}, nil
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("decode snapshot: invalid JSON")
	}

	if err := validateShape(data); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if tasks == nil {
		tasks = []task.Task{}
	}

	seen := make(map[string]bool, len(tasks))
	for i, tk := range tasks {
		if seen[tk.ID] {
			return nil, fmt.Errorf("decode snapshot: duplicate id %q at index %d", tk.ID, i)
		}
		seen[tk.ID] = true
	}

	return tasks, nil
}
