// Package get provides the runner logic for listing tasks and goals.
package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/printers"
	"tableflip.dev/studyplan/pkg/store"
	"tableflip.dev/studyplan/pkg/task"
)

// Tasks lists the filtered, sorted task view.
type Tasks struct {
	Filter task.Filter
	ShowID bool
	JSON   bool

	Persistence store.Persistence
}

func (n *Tasks) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	p := planner.New(n.Persistence)
	view := p.Tasks.Query(n.Filter, time.Now())
	task.Sort(view)

	if n.JSON {
		b, err := json.Marshal(view)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount(fmt.Sprintf("Tasks (%s)", n.Filter), len(view))
	pp.Tasks(view...)
	return nil
}

// Goals lists all goals.
type Goals struct {
	ShowID bool
	JSON   bool

	Persistence store.Persistence
}

func (n *Goals) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	p := planner.New(n.Persistence)
	all := p.Goals.All()

	if n.JSON {
		b, err := json.Marshal(all)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount("Goals", len(all))
	pp.Goals(all...)
	return nil
}
