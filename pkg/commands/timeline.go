package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/commands/options"
	"tableflip.dev/studyplan/pkg/runner/week"
	"tableflip.dev/studyplan/pkg/store"
)

func addTimeline(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	offset := 0

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the weekly timeline",
		Long:  "Show tasks bucketed over the Sunday-start week enclosing today, optionally shifted by whole weeks.",
		Example: `
studyplan timeline
studyplan timeline --week -1
studyplan timeline --week 2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := week.Week{
				Offset:      offset,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().IntVarP(&offset, "week", "w", 0,
		"Week offset from the current week, example: -1 for last week.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
