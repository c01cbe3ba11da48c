// Package progress provides the runner logic for updating goal progress.
package progress

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/printers"
	"tableflip.dev/studyplan/pkg/store"
)

// Progress sets the progress percentage for a goal by id. Values outside
// [0,100] are clamped by the store.
type Progress struct {
	ID    string
	Value int

	Persistence store.Persistence
}

func (n *Progress) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set progress, no persistence")
	}

	p := planner.New(n.Persistence)
	if g := p.Goals.SetProgress(n.ID, n.Value); g == nil {
		fmt.Printf("no goal with id %s\n", n.ID)
	}

	pp := printers.PrettyPrint{ShowID: true}
	all := p.Goals.All()
	pp.TitleWithCount("Goals", len(all))
	pp.Goals(all...)
	return nil
}
