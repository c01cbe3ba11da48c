package planner

import (
	"tableflip.dev/studyplan/pkg/goal"
	"tableflip.dev/studyplan/pkg/store"
)

// GoalStore owns the ordered goal collection, with the same persistence and
// lookup-miss semantics as TaskStore.
type GoalStore struct {
	p     store.Persistence
	items []*goal.Goal
}

func newGoalStore(p store.Persistence) *GoalStore {
	s := &GoalStore{p: p}
	if p != nil {
		p.Load(goalsKey, &s.items)
	}
	return s
}

// Add validates and appends a new goal.
func (s *GoalStore) Add(f goal.Fields) (*goal.Goal, error) {
	g, err := goal.New(f)
	if err != nil {
		return nil, err
	}
	s.items = append(s.items, g)
	s.persist()
	return g, nil
}

// Update replaces the editable fields of the goal with the given id.
// Returns nil when the id is unknown.
func (s *GoalStore) Update(id string, f goal.Fields) *goal.Goal {
	g := s.Get(id)
	if g == nil {
		return nil
	}
	g.Apply(f)
	s.persist()
	return g
}

// Delete removes the goal with the given id if present.
func (s *GoalStore) Delete(id string) {
	for i, g := range s.items {
		if g.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// SetProgress clamps and applies the new progress value for the goal with
// the given id. Returns nil when the id is unknown.
func (s *GoalStore) SetProgress(id string, v int) *goal.Goal {
	g := s.Get(id)
	if g == nil {
		return nil
	}
	g.SetProgress(v)
	s.persist()
	return g
}

// Get returns the goal with the given id, or nil.
func (s *GoalStore) Get(id string) *goal.Goal {
	for _, g := range s.items {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// All returns the collection in insertion order as a fresh slice.
func (s *GoalStore) All() []*goal.Goal {
	out := make([]*goal.Goal, len(s.items))
	copy(out, s.items)
	return out
}

// Len reports the collection size.
func (s *GoalStore) Len() int {
	return len(s.items)
}

func (s *GoalStore) persist() {
	if s.p == nil {
		return
	}
	s.p.Save(goalsKey, s.items)
}
