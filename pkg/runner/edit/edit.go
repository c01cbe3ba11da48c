// Package edit provides the runner logic for updating task and goal fields.
package edit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/printers"
	"tableflip.dev/studyplan/pkg/store"
	"tableflip.dev/studyplan/pkg/task"
)

// Task overrides selected task fields by id. Nil override fields keep the
// current value.
type Task struct {
	ID          string
	Title       *string
	Description *string
	DueDate     *time.Time
	ClearDue    bool
	Priority    *task.Priority
	Subject     *string

	Persistence store.Persistence
}

func (n *Task) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}

	p := planner.New(n.Persistence)
	t := p.Tasks.Get(n.ID)
	if t == nil {
		fmt.Printf("no task with id %s\n", n.ID)
		return nil
	}

	f := t.Fields()
	if n.Title != nil {
		f.Title = *n.Title
	}
	if n.Description != nil {
		f.Description = *n.Description
	}
	if n.DueDate != nil {
		f.DueDate = n.DueDate
	}
	if n.ClearDue {
		f.DueDate = nil
	}
	if n.Priority != nil {
		f.Priority = *n.Priority
	}
	if n.Subject != nil {
		f.Subject = *n.Subject
	}
	p.Tasks.Update(n.ID, f)

	pp := printers.PrettyPrint{ShowID: true}
	all := p.Tasks.All()
	task.Sort(all)
	pp.TitleWithCount("Tasks", len(all))
	pp.Tasks(all...)
	return nil
}

// Goal overrides selected goal fields by id.
type Goal struct {
	ID          string
	Title       *string
	Description *string
	TargetDate  *time.Time
	ClearTarget bool
	Subject     *string

	Persistence store.Persistence
}

func (n *Goal) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}

	p := planner.New(n.Persistence)
	g := p.Goals.Get(n.ID)
	if g == nil {
		fmt.Printf("no goal with id %s\n", n.ID)
		return nil
	}

	f := g.Fields()
	if n.Title != nil {
		f.Title = *n.Title
	}
	if n.Description != nil {
		f.Description = *n.Description
	}
	if n.TargetDate != nil {
		f.TargetDate = n.TargetDate
	}
	if n.ClearTarget {
		f.TargetDate = nil
	}
	if n.Subject != nil {
		f.Subject = *n.Subject
	}
	p.Goals.Update(n.ID, f)

	pp := printers.PrettyPrint{ShowID: true}
	all := p.Goals.All()
	pp.TitleWithCount("Goals", len(all))
	pp.Goals(all...)
	return nil
}
