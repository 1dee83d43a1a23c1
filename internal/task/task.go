// Package task defines the task model shared by the store and the
// presentation surfaces.
package task

import (
	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// Task is one user-visible to-do item.
//
// ID is assigned at creation and never changes; it is the sole key for
// lookups and equality. Title is fixed at creation. IsSelected marks the
// task for batch deletion; it is a UI concern but persists across
// sessions like everything else.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
	IsSelected  bool   `json:"isSelected"`
}

// New constructs a task with a fresh random id and both flags cleared.
//
// The title is normalized to NFC so the persisted form is stable across
// input methods. No other validation is applied; callers that care about
// empty titles filter them before calling.
func New(title string) Task {
	return Task{
		ID:    uuid.NewString(),
		Title: norm.NFC.String(title),
	}
}
