package dashboard

import (
	"fmt"
	"testing"
	"time"

	"tableflip.dev/studyplan/pkg/goal"
	"tableflip.dev/studyplan/pkg/task"
	"tableflip.dev/studyplan/pkg/timestamp"
)

func pendingTask(t *testing.T, title string, due *time.Time) *task.Task {
	t.Helper()
	tk, err := task.New(task.Fields{Title: title, DueDate: due})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tk
}

func completedTask(t *testing.T, title string, at time.Time) *task.Task {
	t.Helper()
	tk := pendingTask(t, title, nil)
	tk.Completed = true
	done := timestamp.New(at)
	tk.CompletedAt = &done
	return tk
}

func achievedGoal(t *testing.T, title string, at time.Time) *goal.Goal {
	t.Helper()
	g, err := goal.New(goal.Fields{Title: title})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.SetProgress(100)
	done := timestamp.New(at)
	g.CompletedAt = &done
	return g
}

func TestTodayCount(t *testing.T) {
	today := time.Date(2025, time.March, 5, 14, 0, 0, 0, time.Local)
	morning := time.Date(2025, time.March, 5, 8, 0, 0, 0, time.Local)
	tomorrow := today.AddDate(0, 0, 1)

	tasks := []*task.Task{
		pendingTask(t, "today", &morning),
		pendingTask(t, "tomorrow", &tomorrow),
		pendingTask(t, "undated", nil),
	}
	if got := TodayCount(tasks, today); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestUpcomingDeadlines(t *testing.T) {
	today := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.Local)

	dayZero := today.Add(2 * time.Hour)
	daySeven := today.AddDate(0, 0, 7)
	daySevenLate := today.AddDate(0, 0, 7).Add(23*time.Hour + 59*time.Minute)
	dayEight := today.AddDate(0, 0, 8)
	longPast := today.AddDate(0, 0, -2)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"later today", dayZero, 1},
		{"exactly day seven", daySeven, 1},
		// ceil((7d+23h59m)/24h) is 8, outside the window.
		{"day seven evening", daySevenLate, 0},
		{"day eight", dayEight, 0},
		{"past", longPast, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tasks := []*task.Task{pendingTask(t, tc.name, &tc.due)}
			if got := UpcomingDeadlines(tasks, today); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestUpcomingDeadlinesSkipsCompletedAndUndated(t *testing.T) {
	today := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.Local)
	due := today.AddDate(0, 0, 2)

	done := pendingTask(t, "done", &due)
	done.Toggle()

	tasks := []*task.Task{
		done,
		pendingTask(t, "undated", nil),
		pendingTask(t, "counted", &due),
	}
	if got := UpcomingDeadlines(tasks, today); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestRecentActivityMergesNewestFirst(t *testing.T) {
	base := time.Date(2025, time.March, 5, 12, 0, 0, 0, time.Local)

	tasks := []*task.Task{
		completedTask(t, "older task", base.Add(-3*time.Hour)),
		completedTask(t, "newer task", base.Add(-1*time.Hour)),
	}
	goals := []*goal.Goal{
		achievedGoal(t, "middle goal", base.Add(-2*time.Hour)),
	}

	feed := RecentActivity(tasks, goals, ActivityLimit)
	if len(feed) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(feed))
	}
	want := []struct {
		text string
		kind Kind
	}{
		{"Completed task: newer task", KindTask},
		{"Achieved goal: middle goal", KindGoal},
		{"Completed task: older task", KindTask},
	}
	for i, w := range want {
		if feed[i].Text != w.text || feed[i].Kind != w.kind {
			t.Fatalf("position %d: expected %q, got %q", i, w.text, feed[i].Text)
		}
	}
}

func TestRecentActivityPreTruncatesPerSource(t *testing.T) {
	base := time.Date(2025, time.March, 5, 12, 0, 0, 0, time.Local)

	// Six completions; the goal achieved before all of them.
	var tasks []*task.Task
	for i := 0; i < 6; i++ {
		tasks = append(tasks, completedTask(t, fmt.Sprintf("t%d", i), base.Add(-time.Duration(i)*time.Hour)))
	}
	goals := []*goal.Goal{achievedGoal(t, "early goal", base.Add(-24*time.Hour))}

	feed := RecentActivity(tasks, goals, ActivityLimit)
	// Tasks are cut to five before merging, so t5 drops even though the
	// feed is below the limit.
	if len(feed) != 6 {
		t.Fatalf("expected 6 activities, got %d", len(feed))
	}
	for _, a := range feed {
		if a.Text == "Completed task: t5" {
			t.Fatalf("expected t5 to be pre-truncated away")
		}
	}
	if feed[5].Kind != KindGoal {
		t.Fatalf("expected the early goal last, got %q", feed[5].Text)
	}
}

func TestRecentActivityHonorsLimit(t *testing.T) {
	base := time.Date(2025, time.March, 5, 12, 0, 0, 0, time.Local)

	var tasks []*task.Task
	for i := 0; i < 5; i++ {
		tasks = append(tasks, completedTask(t, fmt.Sprintf("t%d", i), base.Add(-time.Duration(i)*time.Hour)))
	}
	var goals []*goal.Goal
	for i := 0; i < 3; i++ {
		goals = append(goals, achievedGoal(t, fmt.Sprintf("g%d", i), base.Add(-time.Duration(i)*time.Minute)))
	}

	feed := RecentActivity(tasks, goals, 4)
	if len(feed) != 4 {
		t.Fatalf("expected 4 activities, got %d", len(feed))
	}
}

func TestSummarize(t *testing.T) {
	today := time.Date(2025, time.March, 5, 9, 0, 0, 0, time.Local)
	dueToday := today.Add(3 * time.Hour)

	tasks := []*task.Task{
		pendingTask(t, "due today", &dueToday),
		completedTask(t, "done today", today.Add(-time.Hour)),
	}
	goals := []*goal.Goal{
		achievedGoal(t, "achieved", today.Add(-48*time.Hour)),
	}

	s := Summarize(tasks, goals, today)
	if s.TodayTasks != 1 {
		t.Fatalf("expected 1 today task, got %d", s.TodayTasks)
	}
	if s.CompletedGoals != 1 {
		t.Fatalf("expected 1 completed goal, got %d", s.CompletedGoals)
	}
	if s.UpcomingDeadlines != 1 {
		t.Fatalf("expected 1 upcoming deadline, got %d", s.UpcomingDeadlines)
	}
	if s.StudyStreak != 1 {
		t.Fatalf("expected streak 1, got %d", s.StudyStreak)
	}
}
