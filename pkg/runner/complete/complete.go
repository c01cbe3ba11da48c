// Package complete provides the runner logic for toggling task completion.
package complete

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/printers"
	"tableflip.dev/studyplan/pkg/store"
	"tableflip.dev/studyplan/pkg/task"
)

// Complete toggles completion for a task by id.
type Complete struct {
	ID          string
	Persistence store.Persistence
}

// Do flips the completion state of the configured task and prints the
// refreshed list. An unknown id leaves the collection untouched.
func (n *Complete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not complete, no persistence")
	}

	p := planner.New(n.Persistence)
	if t := p.Tasks.ToggleComplete(n.ID); t == nil {
		fmt.Printf("no task with id %s\n", n.ID)
	}

	pp := printers.PrettyPrint{ShowID: true}
	all := p.Tasks.All()
	task.Sort(all)
	fmt.Println("")
	pp.TitleWithCount("Tasks", len(all))
	pp.Tasks(all...)
	return nil
}
