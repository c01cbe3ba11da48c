package planner

import (
	"time"

	"tableflip.dev/studyplan/pkg/store"
	"tableflip.dev/studyplan/pkg/task"
)

// TaskStore owns the ordered task collection. Mutations persist best
// effort; operations on unknown identifiers are silent no-ops so callers
// need no defensive lookups.
type TaskStore struct {
	p     store.Persistence
	items []*task.Task
}

func newTaskStore(p store.Persistence) *TaskStore {
	s := &TaskStore{p: p}
	if p != nil {
		p.Load(tasksKey, &s.items)
	}
	return s
}

// Add validates and appends a new task.
func (s *TaskStore) Add(f task.Fields) (*task.Task, error) {
	t, err := task.New(f)
	if err != nil {
		return nil, err
	}
	s.items = append(s.items, t)
	s.persist()
	return t, nil
}

// Update replaces the editable fields of the task with the given id,
// preserving identity, creation time and completion state. Returns nil when
// the id is unknown.
func (s *TaskStore) Update(id string, f task.Fields) *task.Task {
	t := s.Get(id)
	if t == nil {
		return nil
	}
	t.Apply(f)
	s.persist()
	return t
}

// Delete removes the task with the given id if present.
func (s *TaskStore) Delete(id string) {
	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// ToggleComplete flips completion for the task with the given id.
func (s *TaskStore) ToggleComplete(id string) *task.Task {
	t := s.Get(id)
	if t == nil {
		return nil
	}
	t.Toggle()
	s.persist()
	return t
}

// Get returns the task with the given id, or nil.
func (s *TaskStore) Get(id string) *task.Task {
	for _, t := range s.items {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// All returns the collection in insertion order. The slice is fresh; the
// stored order is never mutated by callers.
func (s *TaskStore) All() []*task.Task {
	out := make([]*task.Task, len(s.items))
	copy(out, s.items)
	return out
}

// Query returns the tasks matching the filter at now, in insertion order.
func (s *TaskStore) Query(f task.Filter, now time.Time) []*task.Task {
	out := make([]*task.Task, 0, len(s.items))
	for _, t := range s.items {
		if f.Match(t, now) {
			out = append(out, t)
		}
	}
	return out
}

// Len reports the collection size.
func (s *TaskStore) Len() int {
	return len(s.items)
}

func (s *TaskStore) persist() {
	if s.p == nil {
		return
	}
	s.p.Save(tasksKey, s.items)
}
