package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/studyplan/pkg/goal"
	"tableflip.dev/studyplan/pkg/task"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string { return c.path }

func newTestStore(t *testing.T) (Persistence, string) {
	t.Helper()
	dir := t.TempDir()
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p, dir
}

func TestRoundTripTasks(t *testing.T) {
	p, _ := newTestStore(t)

	due := time.Now().Add(48 * time.Hour)
	first, err := task.New(task.Fields{
		Title:    "Complete Math Assignment",
		DueDate:  &due,
		Priority: task.PriorityHigh,
		Subject:  "Mathematics",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := task.New(task.Fields{Title: "Read Physics Chapter 3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second.Toggle()

	p.Save("tasks", []*task.Task{first, second})

	var back []*task.Task
	if !p.Load("tasks", &back) {
		t.Fatalf("expected tasks blob to load")
	}
	if len(back) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(back))
	}
	if back[0].ID != first.ID || back[0].Title != first.Title {
		t.Fatalf("expected %+v, got %+v", first, back[0])
	}
	if back[0].DueDate == nil || !back[0].DueDate.SameDay(due) {
		t.Fatalf("expected due date to survive the round trip")
	}
	if !back[1].Completed || back[1].CompletedAt == nil {
		t.Fatalf("expected completion state to survive the round trip")
	}
}

func TestRoundTripGoals(t *testing.T) {
	p, _ := newTestStore(t)

	g, err := goal.New(goal.Fields{Title: "Master Calculus", Subject: "Mathematics"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.SetProgress(25)

	p.Save("goals", []*goal.Goal{g})

	var back []*goal.Goal
	if !p.Load("goals", &back) {
		t.Fatalf("expected goals blob to load")
	}
	if len(back) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(back))
	}
	if back[0].Progress != 25 || back[0].Completed {
		t.Fatalf("expected progress preserved, got %+v", back[0])
	}
}

func TestLoadMissingKeyIsAbsent(t *testing.T) {
	p, _ := newTestStore(t)
	var tasks []*task.Task
	if p.Load("tasks", &tasks) {
		t.Fatalf("expected absence for a missing key")
	}
}

func TestLoadCorruptBlobIsAbsent(t *testing.T) {
	p, dir := newTestStore(t)
	if err := os.WriteFile(filepath.Join(dir, "tasks"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var tasks []*task.Task
	if p.Load("tasks", &tasks) {
		t.Fatalf("expected absence for a corrupt blob")
	}
}

func TestSaveOverwrites(t *testing.T) {
	p, _ := newTestStore(t)

	a, _ := task.New(task.Fields{Title: "a"})
	b, _ := task.New(task.Fields{Title: "b"})

	p.Save("tasks", []*task.Task{a, b})
	p.Save("tasks", []*task.Task{b})

	var back []*task.Task
	if !p.Load("tasks", &back) {
		t.Fatalf("expected tasks blob to load")
	}
	if len(back) != 1 || back[0].ID != b.ID {
		t.Fatalf("expected the newer blob, got %d tasks", len(back))
	}
}
