// Package goal defines the study goal entity tracked by percentage progress.
package goal

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/studyplan/pkg/timestamp"
)

var ErrEmptyTitle = errors.New("goal: title required")

type Goal struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	TargetDate  *timestamp.Timestamp `json:"targetDate,omitempty"`
	Subject     string               `json:"subject,omitempty"`
	Progress    int                  `json:"progress"`
	Completed   bool                 `json:"completed"`
	CreatedAt   timestamp.Timestamp  `json:"createdAt"`
	CompletedAt *timestamp.Timestamp `json:"completedAt,omitempty"`
}

// Fields carries the caller-supplied attributes of a goal.
type Fields struct {
	Title       string
	Description string
	TargetDate  *time.Time
	Subject     string
}

// New creates a goal at zero progress with a fresh identifier.
func New(f Fields) (*Goal, error) {
	f.Title = strings.TrimSpace(f.Title)
	if f.Title == "" {
		return nil, ErrEmptyTitle
	}
	g := &Goal{
		ID:        uuid.NewString(),
		Progress:  0,
		Completed: false,
		CreatedAt: timestamp.New(time.Now()),
	}
	g.Apply(f)
	return g, nil
}

// Apply overwrites the user-editable attributes with f. Progress and
// completion state are only changed through SetProgress.
func (g *Goal) Apply(f Fields) {
	g.Title = f.Title
	g.Description = f.Description
	g.Subject = f.Subject
	if f.TargetDate != nil {
		target := timestamp.New(*f.TargetDate)
		g.TargetDate = &target
	} else {
		g.TargetDate = nil
	}
}

// Fields returns the editable attributes.
func (g *Goal) Fields() Fields {
	f := Fields{
		Title:       g.Title,
		Description: g.Description,
		Subject:     g.Subject,
	}
	if g.TargetDate != nil {
		target := g.TargetDate.Time
		f.TargetDate = &target
	}
	return f
}

// SetProgress clamps v to [0,100] and derives completion. CompletedAt
// records when the goal first hit 100 and is kept even if progress later
// drops, preserving the "first achieved" history.
func (g *Goal) SetProgress(v int) {
	g.Progress = clamp(v, 0, 100)
	was := g.Completed
	g.Completed = g.Progress == 100
	if g.Completed && !was {
		done := timestamp.New(time.Now())
		g.CompletedAt = &done
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
