package planner

import (
	"time"

	"tableflip.dev/studyplan/pkg/goal"
	"tableflip.dev/studyplan/pkg/task"
)

// SeedSample populates demonstration tasks and goals. It only runs when both
// collections are empty and reports whether anything was added.
func (p *Planner) SeedSample() bool {
	if p.Tasks.Len() > 0 || p.Goals.Len() > 0 {
		return false
	}

	now := time.Now()

	mathDue := now.Add(2 * 24 * time.Hour)
	physicsDue := now.Add(5 * 24 * time.Hour)
	_, _ = p.Tasks.Add(task.Fields{
		Title:       "Complete Math Assignment",
		Description: "Solve calculus problems from chapter 5",
		DueDate:     &mathDue,
		Priority:    task.PriorityHigh,
		Subject:     "Mathematics",
	})
	_, _ = p.Tasks.Add(task.Fields{
		Title:       "Read Physics Chapter 3",
		Description: "Study quantum mechanics fundamentals",
		DueDate:     &physicsDue,
		Priority:    task.PriorityMedium,
		Subject:     "Physics",
	})

	calculusTarget := now.Add(30 * 24 * time.Hour)
	habitsTarget := now.Add(45 * 24 * time.Hour)
	if g, err := p.Goals.Add(goal.Fields{
		Title:       "Master Calculus",
		Description: "Complete all calculus assignments and achieve 90%+ grades",
		TargetDate:  &calculusTarget,
		Subject:     "Mathematics",
	}); err == nil {
		p.Goals.SetProgress(g.ID, 25)
	}
	if g, err := p.Goals.Add(goal.Fields{
		Title:       "Improve Study Habits",
		Description: "Study for 2 hours daily for 30 consecutive days",
		TargetDate:  &habitsTarget,
		Subject:     "General",
	}); err == nil {
		p.Goals.SetProgress(g.ID, 60)
	}

	return true
}
