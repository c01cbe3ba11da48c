package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/task"
)

// FilterOptions selects a task list view.
type FilterOptions struct {
	FilterString string
}

// AddFilterArgs wires the filter flag on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.FilterString, "filter", "f", "all",
		"Filter the list: all, pending, completed or overdue.")
}

// GetFilter parses the filter flag.
func (o *FilterOptions) GetFilter() (task.Filter, error) {
	return task.ParseFilter(o.FilterString)
}
