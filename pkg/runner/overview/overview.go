// Package overview provides the runner logic for the dashboard view.
package overview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/studyplan/pkg/dashboard"
	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/printers"
	"tableflip.dev/studyplan/pkg/store"
)

// Overview prints the summary counters and the recent-activity feed.
type Overview struct {
	Persistence store.Persistence
}

func (n *Overview) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show dashboard, no persistence")
	}

	p := planner.New(n.Persistence)
	now := time.Now()
	tasks := p.Tasks.All()
	goals := p.Goals.All()

	pp := printers.PrettyPrint{}
	pp.Title("Dashboard")
	pp.Summary(dashboard.Summarize(tasks, goals, now))

	fmt.Println("")
	pp.Title("Recent Activity")
	pp.Activity(dashboard.RecentActivity(tasks, goals, dashboard.ActivityLimit), now)
	return nil
}
