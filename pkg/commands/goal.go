package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/commands/options"
	"tableflip.dev/studyplan/pkg/goal"
	"tableflip.dev/studyplan/pkg/runner/add"
	"tableflip.dev/studyplan/pkg/runner/edit"
	"tableflip.dev/studyplan/pkg/runner/get"
	"tableflip.dev/studyplan/pkg/runner/progress"
	"tableflip.dev/studyplan/pkg/runner/remove"
	"tableflip.dev/studyplan/pkg/store"
)

func addGoal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "goal",
		Aliases: []string{"goals"},
		Short:   "Manage study goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addGoalAdd(cmd)
	addGoalList(cmd)
	addGoalProgress(cmd)
	addGoalEdit(cmd)
	addGoalRemove(cmd)
	topLevel.AddCommand(cmd)
}

func addGoalAdd(topLevel *cobra.Command) {
	gl := &options.GoalOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a goal",
		Example: `
studyplan goal add Master calculus --target="2026-6-1" --subject=Mathematics
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			gl.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			target, err := gl.GetTarget()
			if err != nil {
				return oo.HandleError(err)
			}
			s := add.Goal{
				Fields: goal.Fields{
					Title:       gl.Title,
					Description: gl.Description,
					TargetDate:  target,
					Subject:     gl.Subject,
				},
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddGoalArgs(cmd, gl)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addGoalList(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List goals",
		Example: `
studyplan goal list
studyplan goal list --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Goals{
				ShowID:      oo.ShowID,
				JSON:        oo.JSON,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addGoalProgress(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "progress <id> <percent>",
		Short: "Set goal progress",
		Long:  "Set the progress percentage for a goal. Values are clamped to 0-100; reaching 100 marks the goal achieved.",
		Example: `
studyplan goal progress <id> 60
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires an id and a percentage")
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("invalid percentage %q", args[1])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			value, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			s := progress.Progress{
				ID:          args[0],
				Value:       value,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addGoalEdit(topLevel *cobra.Command) {
	gl := &options.GoalOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit goal fields",
		Example: `
studyplan goal edit <id> --title="Master linear algebra"
studyplan goal edit <id> --clear-target
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.Goal{
				ID:          args[0],
				ClearTarget: gl.ClearTarget,
				Persistence: p,
			}
			if cmd.Flags().Changed("title") {
				s.Title = &gl.Title
			}
			if cmd.Flags().Changed("desc") {
				s.Description = &gl.Description
			}
			if cmd.Flags().Changed("target") {
				target, err := gl.GetTarget()
				if err != nil {
					return oo.HandleError(err)
				}
				s.TargetDate = target
			}
			if cmd.Flags().Changed("subject") {
				s.Subject = &gl.Subject
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVarP(&gl.Title, "title", "t", "", "Rename the goal.")
	options.AddGoalArgs(cmd, gl)
	options.AddClearTargetArg(cmd, gl)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addGoalRemove(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete", "remove"},
		Short:   "Delete a goal",
		Example: `
studyplan goal rm 171dff69-f8b9-4dca-9c4e-2d7a1b3f5c6d
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := remove.Goal{
				ID:          args[0],
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
