// Package planner holds the in-memory task and goal collections and keeps
// them persisted through the store boundary. It replaces the original
// application's global planner instance with an explicit value owned by the
// caller.
package planner

import (
	"tableflip.dev/studyplan/pkg/store"
)

const (
	tasksKey = "tasks"
	goalsKey = "goals"
)

// Planner is the application state: one store per entity kind.
type Planner struct {
	Tasks *TaskStore
	Goals *GoalStore
}

// New loads planner state from persistence. Missing or unreadable blobs
// start the session empty.
func New(p store.Persistence) *Planner {
	return &Planner{
		Tasks: newTaskStore(p),
		Goals: newGoalStore(p),
	}
}
