package dashboard

import (
	"sort"
	"time"

	"tableflip.dev/studyplan/pkg/task"
)

// Streak counts consecutive calendar days ending today with at least one
// completed task. The walk moves backward from today's midnight; several
// completions on the same day advance the streak once.
func Streak(tasks []*task.Task, today time.Time) int {
	done := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed && t.CompletedAt != nil {
			done = append(done, t)
		}
	}
	if len(done) == 0 {
		return 0
	}
	sort.SliceStable(done, func(i, j int) bool {
		return done[i].CompletedAt.After(done[j].CompletedAt.Time)
	})

	streak := 0
	expected := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	for _, t := range done {
		day := t.CompletedAt.DayStart()
		if day.Equal(expected) {
			streak++
			expected = expected.AddDate(0, 0, -1)
		} else if day.Before(expected) {
			break
		}
		// A completion later than expected repeats an already counted
		// day; keep walking.
	}
	return streak
}
