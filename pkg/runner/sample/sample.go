// Package sample provides the runner logic for seeding demonstration data.
package sample

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/printers"
	"tableflip.dev/studyplan/pkg/store"
	"tableflip.dev/studyplan/pkg/task"
)

// Sample seeds example tasks and goals into an empty planner.
type Sample struct {
	Persistence store.Persistence
}

func (n *Sample) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not load sample data, no persistence")
	}

	p := planner.New(n.Persistence)
	if !p.SeedSample() {
		fmt.Println("planner already has data, nothing to do")
		return nil
	}

	pp := printers.PrettyPrint{}
	tasks := p.Tasks.All()
	task.Sort(tasks)
	pp.TitleWithCount("Tasks", len(tasks))
	pp.Tasks(tasks...)

	goals := p.Goals.All()
	pp.TitleWithCount("Goals", len(goals))
	pp.Goals(goals...)
	return nil
}
