// Package dashboard derives summary counters and the recent-activity feed
// from the task and goal collections.
package dashboard

import (
	"fmt"
	"math"
	"sort"
	"time"

	"tableflip.dev/studyplan/pkg/goal"
	"tableflip.dev/studyplan/pkg/task"
	"tableflip.dev/studyplan/pkg/timestamp"
)

const (
	// ActivityLimit caps the merged recent-activity feed.
	ActivityLimit = 10

	recentTasks = 5
	recentGoals = 3
)

// Summary is the set of dashboard counters.
type Summary struct {
	TodayTasks        int
	CompletedGoals    int
	UpcomingDeadlines int
	StudyStreak       int
}

// Summarize computes all counters at once.
func Summarize(tasks []*task.Task, goals []*goal.Goal, today time.Time) Summary {
	completed := 0
	for _, g := range goals {
		if g.Completed {
			completed++
		}
	}
	return Summary{
		TodayTasks:        TodayCount(tasks, today),
		CompletedGoals:    completed,
		UpcomingDeadlines: UpcomingDeadlines(tasks, today),
		StudyStreak:       Streak(tasks, today),
	}
}

// TodayCount counts tasks due on the same calendar day as today.
func TodayCount(tasks []*task.Task, today time.Time) int {
	n := 0
	for _, t := range tasks {
		if t.DueToday(today) {
			n++
		}
	}
	return n
}

// UpcomingDeadlines counts pending tasks due within the next week. Day
// distance is the ceiling of the raw time difference over 24h, so a due
// date late on day 7 can round to 8 and fall out of the window.
func UpcomingDeadlines(tasks []*task.Task, today time.Time) int {
	n := 0
	for _, t := range tasks {
		if t.Completed || t.DueDate == nil {
			continue
		}
		days := int(math.Ceil(float64(t.DueDate.Sub(today)) / float64(24*time.Hour)))
		if days >= 0 && days <= 7 {
			n++
		}
	}
	return n
}

// Kind tags an activity entry with its source.
type Kind string

const (
	KindTask Kind = "task"
	KindGoal Kind = "goal"
)

// Activity is one entry of the recent-activity feed.
type Activity struct {
	Text string
	Time timestamp.Timestamp
	Kind Kind
}

// RecentActivity merges the most recent task completions and goal
// achievements into one feed, newest first, truncated to limit. Each source
// is cut to its own top few before merging, so an older achievement can be
// pushed out even when the feed is not full.
func RecentActivity(tasks []*task.Task, goals []*goal.Goal, limit int) []Activity {
	var out []Activity

	done := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed && t.CompletedAt != nil {
			done = append(done, t)
		}
	}
	sort.SliceStable(done, func(i, j int) bool {
		return done[i].CompletedAt.After(done[j].CompletedAt.Time)
	})
	if len(done) > recentTasks {
		done = done[:recentTasks]
	}
	for _, t := range done {
		out = append(out, Activity{
			Text: fmt.Sprintf("Completed task: %s", t.Title),
			Time: *t.CompletedAt,
			Kind: KindTask,
		})
	}

	achieved := make([]*goal.Goal, 0, len(goals))
	for _, g := range goals {
		if g.Completed && g.CompletedAt != nil {
			achieved = append(achieved, g)
		}
	}
	sort.SliceStable(achieved, func(i, j int) bool {
		return achieved[i].CompletedAt.After(achieved[j].CompletedAt.Time)
	})
	if len(achieved) > recentGoals {
		achieved = achieved[:recentGoals]
	}
	for _, g := range achieved {
		out = append(out, Activity{
			Text: fmt.Sprintf("Achieved goal: %s", g.Title),
			Time: *g.CompletedAt,
			Kind: KindGoal,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time.After(out[j].Time.Time)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
