// Package timeline computes the Sunday-start calendar week and buckets
// tasks into its seven days.
package timeline

import (
	"time"

	"tableflip.dev/studyplan/pkg/task"
)

// Day is one column of the weekly view.
type Day struct {
	Date  time.Time
	Tasks []*task.Task
}

// WeekStart returns the Sunday at or before d, at local midnight.
func WeekStart(d time.Time) time.Time {
	l := d.Local()
	start := time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, l.Location())
	return start.AddDate(0, 0, -int(start.Weekday()))
}

// WeekEnd returns the last instant of the Saturday ending the week of d.
func WeekEnd(d time.Time) time.Time {
	return WeekStart(d).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// BucketByDay distributes tasks over the seven days beginning at weekStart.
// A task lands in the bucket whose calendar day matches its due date; tasks
// without a due date, or due outside the week, appear nowhere.
func BucketByDay(tasks []*task.Task, weekStart time.Time) [7]Day {
	var week [7]Day
	for i := range week {
		week[i].Date = weekStart.AddDate(0, 0, i)
	}
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		for i := range week {
			if t.DueDate.SameDay(week[i].Date) {
				week[i].Tasks = append(week[i].Tasks, t)
				break
			}
		}
	}
	return week
}

// Week computes the bucketed view for the week enclosing ref, shifted by
// offset weeks.
func Week(tasks []*task.Task, ref time.Time, offset int) [7]Day {
	return BucketByDay(tasks, WeekStart(ref.AddDate(0, 0, offset*7)))
}
