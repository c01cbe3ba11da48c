// Package task defines the study task entity and its derived views.
package task

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/studyplan/pkg/timestamp"
)

var ErrEmptyTitle = errors.New("task: title required")

type Task struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	DueDate     *timestamp.Timestamp `json:"dueDate,omitempty"`
	Priority    Priority             `json:"priority"`
	Subject     string               `json:"subject,omitempty"`
	Completed   bool                 `json:"completed"`
	CreatedAt   timestamp.Timestamp  `json:"createdAt"`
	CompletedAt *timestamp.Timestamp `json:"completedAt,omitempty"`
}

// Fields carries the caller-supplied attributes of a task. Update replaces
// all of them; ID, CreatedAt and completion state are never touched.
type Fields struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    Priority
	Subject     string
}

// New creates a pending task with a fresh identifier.
func New(f Fields) (*Task, error) {
	f.Title = strings.TrimSpace(f.Title)
	if f.Title == "" {
		return nil, ErrEmptyTitle
	}
	if f.Priority == "" {
		f.Priority = PriorityMedium
	}
	t := &Task{
		ID:        uuid.NewString(),
		Completed: false,
		CreatedAt: timestamp.New(time.Now()),
	}
	t.Apply(f)
	return t, nil
}

// Apply overwrites the user-editable attributes with f.
func (t *Task) Apply(f Fields) {
	t.Title = f.Title
	t.Description = f.Description
	t.Priority = f.Priority
	t.Subject = f.Subject
	if f.DueDate != nil {
		due := timestamp.New(*f.DueDate)
		t.DueDate = &due
	} else {
		t.DueDate = nil
	}
}

// Fields returns the editable attributes, for flag-by-flag merging in edits.
func (t *Task) Fields() Fields {
	f := Fields{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Subject:     t.Subject,
	}
	if t.DueDate != nil {
		due := t.DueDate.Time
		f.DueDate = &due
	}
	return f
}

// Toggle flips completion. CompletedAt is present exactly when the task is
// complete.
func (t *Task) Toggle() {
	t.Completed = !t.Completed
	if t.Completed {
		done := timestamp.New(time.Now())
		t.CompletedAt = &done
	} else {
		t.CompletedAt = nil
	}
}

// Overdue reports whether the task is pending and past its due date.
func (t *Task) Overdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}

// DueToday reports whether the task is due on the same calendar day as now.
func (t *Task) DueToday(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.SameDay(now)
}
