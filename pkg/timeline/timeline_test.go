package timeline

import (
	"testing"
	"time"

	"tableflip.dev/studyplan/pkg/task"
)

func date(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.Local)
}

func newTask(t *testing.T, title string, due *time.Time) *task.Task {
	t.Helper()
	tk, err := task.New(task.Fields{Title: title, DueDate: due})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tk
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		// 2025-03-05 is a Wednesday, 2025-03-02 the preceding Sunday.
		{"midweek", date(2025, time.March, 5, 15), date(2025, time.March, 2, 0)},
		{"sunday", date(2025, time.March, 2, 9), date(2025, time.March, 2, 0)},
		{"saturday", date(2025, time.March, 8, 23), date(2025, time.March, 2, 0)},
		{"month boundary", date(2025, time.April, 2, 1), date(2025, time.March, 30, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := WeekStart(tc.in)
			if !got.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			if got.Weekday() != time.Sunday {
				t.Fatalf("expected a Sunday, got %v", got.Weekday())
			}
		})
	}
}

func TestWeekStartIdempotent(t *testing.T) {
	d := date(2025, time.March, 5, 15)
	once := WeekStart(d)
	twice := WeekStart(once)
	if !once.Equal(twice) {
		t.Fatalf("expected %v, got %v", once, twice)
	}
}

func TestWeekEnd(t *testing.T) {
	end := WeekEnd(date(2025, time.March, 5, 15))
	if end.Weekday() != time.Saturday {
		t.Fatalf("expected a Saturday, got %v", end.Weekday())
	}
	want := date(2025, time.March, 9, 0).Add(-time.Nanosecond)
	if !end.Equal(want) {
		t.Fatalf("expected %v, got %v", want, end)
	}
}

func TestBucketByDayPartitions(t *testing.T) {
	start := WeekStart(date(2025, time.March, 5, 0))

	sunday := start.Add(10 * time.Hour)
	wednesday := start.AddDate(0, 0, 3).Add(22 * time.Hour)
	saturday := start.AddDate(0, 0, 6).Add(1 * time.Hour)
	nextWeek := start.AddDate(0, 0, 9)
	lastWeek := start.AddDate(0, 0, -2)

	inWeek := []*task.Task{
		newTask(t, "sun", &sunday),
		newTask(t, "wed", &wednesday),
		newTask(t, "sat", &saturday),
	}
	excluded := []*task.Task{
		newTask(t, "next", &nextWeek),
		newTask(t, "last", &lastWeek),
		newTask(t, "undated", nil),
	}

	week := BucketByDay(append(inWeek, excluded...), start)

	counts := map[string]int{}
	total := 0
	for _, day := range week {
		for _, tk := range day.Tasks {
			counts[tk.Title]++
			total++
		}
	}
	if total != len(inWeek) {
		t.Fatalf("expected %d bucketed tasks, got %d", len(inWeek), total)
	}
	for _, tk := range inWeek {
		if counts[tk.Title] != 1 {
			t.Fatalf("expected %s in exactly one bucket, got %d", tk.Title, counts[tk.Title])
		}
	}

	if len(week[0].Tasks) != 1 || week[0].Tasks[0].Title != "sun" {
		t.Fatalf("expected sun in bucket 0")
	}
	if len(week[3].Tasks) != 1 || week[3].Tasks[0].Title != "wed" {
		t.Fatalf("expected wed in bucket 3")
	}
	if len(week[6].Tasks) != 1 || week[6].Tasks[0].Title != "sat" {
		t.Fatalf("expected sat in bucket 6")
	}
}

func TestWeekOffset(t *testing.T) {
	ref := date(2025, time.March, 5, 12)
	nextWeekDue := date(2025, time.March, 12, 9)
	tk := newTask(t, "ahead", &nextWeekDue)

	current := Week([]*task.Task{tk}, ref, 0)
	for _, day := range current {
		if len(day.Tasks) != 0 {
			t.Fatalf("expected empty current week")
		}
	}

	next := Week([]*task.Task{tk}, ref, 1)
	if len(next[3].Tasks) != 1 {
		t.Fatalf("expected task in Wednesday bucket of next week")
	}
	if !next[0].Date.Equal(date(2025, time.March, 9, 0)) {
		t.Fatalf("expected next week to start March 9, got %v", next[0].Date)
	}
}
