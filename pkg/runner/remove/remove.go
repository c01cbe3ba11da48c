// Package remove provides the runner logic for deleting tasks and goals.
package remove

import (
	"context"
	"errors"

	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/printers"
	"tableflip.dev/studyplan/pkg/store"
	"tableflip.dev/studyplan/pkg/task"
)

// Task deletes a task by id. Deletion is immediate; there is no undo.
type Task struct {
	ID          string
	Persistence store.Persistence
}

func (n *Task) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	p := planner.New(n.Persistence)
	p.Tasks.Delete(n.ID)

	pp := printers.PrettyPrint{ShowID: true}
	all := p.Tasks.All()
	task.Sort(all)
	pp.TitleWithCount("Tasks", len(all))
	pp.Tasks(all...)
	return nil
}

// Goal deletes a goal by id.
type Goal struct {
	ID          string
	Persistence store.Persistence
}

func (n *Goal) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	p := planner.New(n.Persistence)
	p.Goals.Delete(n.ID)

	pp := printers.PrettyPrint{ShowID: true}
	all := p.Goals.All()
	pp.TitleWithCount("Goals", len(all))
	pp.Goals(all...)
	return nil
}
