package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "studyplan",
		Short: base.Wrap80("Personal study planning on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addTask(topLevel)
	addGoal(topLevel)
	addTimeline(topLevel)
	addDashboard(topLevel)
	addSample(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
