package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/task"
)

// TaskOptions captures the task field flags shared by add and edit.
type TaskOptions struct {
	Title       string
	Description string
	DueString   string
	ClearDue    bool
	Priority    string
	Subject     string
}

// AddTaskArgs wires the task field flags on the provided command.
func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Description, "desc", "d", "",
		"Describe the task.")
	cmd.Flags().StringVar(&o.DueString, "due", "",
		`Specify a due date, example: --due="2026-2-28" or --due="2026-2-28 17:00".`)
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "",
		"Set the priority: low, medium or high.")
	cmd.Flags().StringVarP(&o.Subject, "subject", "s", "",
		"Tag the task with a subject.")
}

// AddClearDueArg registers the flag that removes an existing due date.
func AddClearDueArg(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().BoolVar(&o.ClearDue, "clear-due", false,
		"Remove the due date.")
}

// GetDue parses the due date flag; nil when unset.
func (o *TaskOptions) GetDue() (*time.Time, error) {
	return ParseDay(o.DueString)
}

// GetPriority parses the priority flag; empty when unset.
func (o *TaskOptions) GetPriority() (task.Priority, error) {
	if o.Priority == "" {
		return "", nil
	}
	return task.ParsePriority(o.Priority)
}
