// Package week provides the runner logic for the weekly timeline view.
package week

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/printers"
	"tableflip.dev/studyplan/pkg/store"
	"tableflip.dev/studyplan/pkg/timeline"
)

// Week renders the Sunday-start week at the given offset from today.
type Week struct {
	Offset int

	Persistence store.Persistence
}

func (n *Week) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show timeline, no persistence")
	}

	p := planner.New(n.Persistence)
	now := time.Now()
	days := timeline.Week(p.Tasks.All(), now, n.Offset)

	pp := printers.PrettyPrint{}
	pp.Week(days, now)
	return nil
}
