package options

import (
	"time"

	"github.com/spf13/cobra"
)

// GoalOptions captures the goal field flags shared by add and edit.
type GoalOptions struct {
	Title        string
	Description  string
	TargetString string
	ClearTarget  bool
	Subject      string
}

// AddGoalArgs wires the goal field flags on the provided command.
func AddGoalArgs(cmd *cobra.Command, o *GoalOptions) {
	cmd.Flags().StringVarP(&o.Description, "desc", "d", "",
		"Describe the goal.")
	cmd.Flags().StringVar(&o.TargetString, "target", "",
		`Specify a target date, example: --target="2026-6-1".`)
	cmd.Flags().StringVarP(&o.Subject, "subject", "s", "",
		"Tag the goal with a subject.")
}

// AddClearTargetArg registers the flag that removes an existing target date.
func AddClearTargetArg(cmd *cobra.Command, o *GoalOptions) {
	cmd.Flags().BoolVar(&o.ClearTarget, "clear-target", false,
		"Remove the target date.")
}

// GetTarget parses the target date flag; nil when unset.
func (o *GoalOptions) GetTarget() (*time.Time, error) {
	return ParseDay(o.TargetString)
}
