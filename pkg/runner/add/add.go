// Package add provides the runner logic for creating tasks and goals.
package add

import (
	"context"
	"errors"

	"tableflip.dev/studyplan/pkg/goal"
	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/printers"
	"tableflip.dev/studyplan/pkg/store"
	"tableflip.dev/studyplan/pkg/task"
)

// Task creates a new task and prints the refreshed list.
type Task struct {
	Fields task.Fields

	Persistence store.Persistence
}

func (n *Task) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	p := planner.New(n.Persistence)
	if _, err := p.Tasks.Add(n.Fields); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	all := p.Tasks.All()
	task.Sort(all)
	pp.TitleWithCount("Tasks", len(all))
	pp.Tasks(all...)
	return nil
}

// Goal creates a new goal and prints the refreshed list.
type Goal struct {
	Fields goal.Fields

	Persistence store.Persistence
}

func (n *Goal) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	p := planner.New(n.Persistence)
	if _, err := p.Goals.Add(n.Fields); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	all := p.Goals.All()
	pp.TitleWithCount("Goals", len(all))
	pp.Goals(all...)
	return nil
}
