package task

import (
	"fmt"
	"sort"
	"time"
)

// Filter selects a view over the task collection.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
	FilterOverdue   Filter = "overdue"
)

func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterPending, FilterCompleted, FilterOverdue:
		return Filter(s), nil
	default:
		return "", fmt.Errorf("task: unknown filter %q", s)
	}
}

// Match reports whether the task belongs in the filtered view at now.
func (f Filter) Match(t *Task, now time.Time) bool {
	switch f {
	case FilterPending:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	case FilterOverdue:
		return t.Overdue(now)
	default:
		return true
	}
}

// Sort orders tasks in place: completed last, then ascending due date with
// dated tasks ahead of undated ones, then priority high to low. The
// priority key only decides when the due-date comparison could not.
func Sort(tasks []*Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if a.DueDate != nil && b.DueDate != nil {
			if !a.DueDate.Equal(b.DueDate.Time) {
				return a.DueDate.Before(b.DueDate.Time)
			}
			return false
		}
		if (a.DueDate != nil) != (b.DueDate != nil) {
			return a.DueDate != nil
		}
		return a.Priority.Rank() > b.Priority.Rank()
	})
}
