package store

import (
	"context"
	"errors"
	"log/slog"

	"slate/internal/backend"
	"slate/internal/snapshot"
	"slate/internal/task"
)

// Key is the single backend key the store owns. The value under it is
// always the full serialized sequence.
const Key = "tasks"

// Store is the authoritative task sequence.
type Store struct {
	backend backend.Backend
	tasks   []task.Task
}

// New constructs a store over b and loads the persisted sequence.
//
// A missing key is a normal first run. Bytes that fail to decode are
// logged and discarded, leaving the store empty; the next mutation
// overwrites them.
func New(ctx context.Context, b backend.Backend) *Store {
	s := &Store{backend: b, tasks: []task.Task{}}
	s.load(ctx)
	return s
}

// load populates the sequence from the backend. Called once from New.
func (s *Store) load(ctx context.Context) {
	data, err := s.backend.Get(ctx, Key)
	if err != nil {
		if !errors.Is(err, backend.ErrNotFound) {
			slog.Warn("task load failed, starting empty", "error", err)
		}
		return
	}

	tasks, err := snapshot.Decode(data)
	if err != nil {
		slog.Warn("stored tasks are unreadable, starting empty", "error", err)
		return
	}
	s.tasks = tasks
}

// Add appends a new task with the given title and persists. The store
// accepts any title; filtering empty input is the caller's job.
func (s *Store) Add(ctx context.Context, title string) task.Task {
	t := task.New(title)
	s.tasks = append(s.tasks, t)
	s.persist(ctx)
	return t
}

// ToggleCompletion flips the completion flag of the task with the given
// id and reports whether a task matched. An unknown id is a no-op and
// skips the persistence write.
func (s *Store) ToggleCompletion(ctx context.Context, id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].IsCompleted = !s.tasks[i].IsCompleted
			s.persist(ctx)
			return true
		}
	}
	return false
}

// ToggleSelection flips the selection flag of the task with the given
// id and reports whether a task matched. An unknown id is a no-op and
// skips the persistence write.
func (s *Store) ToggleSelection(ctx context.Context, id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].IsSelected = !s.tasks[i].IsSelected
			s.persist(ctx)
			return true
		}
	}
	return false
}

// DeleteAt removes the tasks at the given 0-based positions in one
// operation and returns how many were removed. Out-of-range and
// duplicate positions are ignored. Survivors keep their relative order.
// When nothing matches, nothing is written.
func (s *Store) DeleteAt(ctx context.Context, indices ...int) int {
	doomed := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(s.tasks) {
			doomed[idx] = true
		}
	}
	if len(doomed) == 0 {
		return 0
	}

	kept := make([]task.Task, 0, len(s.tasks)-len(doomed))
	for i, t := range s.tasks {
		if !doomed[i] {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	s.persist(ctx)
	return len(doomed)
}

// DeleteSelected removes every selected task, keeps the remainder in
// order, and returns how many were removed. When nothing is selected,
// nothing is written.
func (s *Store) DeleteSelected(ctx context.Context) int {
	kept := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.IsSelected {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	if removed == 0 {
		return 0
	}
	s.tasks = kept
	s.persist(ctx)
	return removed
}

// DeleteAll empties the sequence. Always persists; the empty snapshot
// is the meaningful result.
func (s *Store) DeleteAll(ctx context.Context) {
	s.tasks = []task.Task{}
	s.persist(ctx)
}

// Tasks returns a copy of the current sequence in order. Callers cannot
// mutate store state through it.
func (s *Store) Tasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// persist writes the full sequence through to the backend. Every
// mutating operation ends here. Failures are logged and swallowed; the
// in-memory sequence stays authoritative for the session.
func (s *Store) persist(ctx context.Context) {
	data, err := snapshot.Encode(s.tasks)
	if err != nil {
		slog.Warn("task snapshot encode failed, keeping in-memory state", "error", err)
		return
	}
	if err := s.backend.Put(ctx, Key, data); err != nil {
		slog.Warn("task snapshot write failed, keeping in-memory state", "error", err)
	}
}
