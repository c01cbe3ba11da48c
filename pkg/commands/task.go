package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/commands/options"
	"tableflip.dev/studyplan/pkg/runner/add"
	"tableflip.dev/studyplan/pkg/runner/complete"
	"tableflip.dev/studyplan/pkg/runner/edit"
	"tableflip.dev/studyplan/pkg/runner/get"
	"tableflip.dev/studyplan/pkg/runner/remove"
	"tableflip.dev/studyplan/pkg/store"
	"tableflip.dev/studyplan/pkg/task"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage study tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskAdd(cmd)
	addTaskList(cmd)
	addTaskDone(cmd)
	addTaskEdit(cmd)
	addTaskRemove(cmd)
	topLevel.AddCommand(cmd)
}

func addTaskAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Example: `
studyplan task add Complete math assignment --due="2026-2-28" --priority=high --subject=Mathematics
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			to.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			due, err := to.GetDue()
			if err != nil {
				return oo.HandleError(err)
			}
			priority, err := to.GetPriority()
			if err != nil {
				return oo.HandleError(err)
			}
			s := add.Task{
				Fields: task.Fields{
					Title:       to.Title,
					Description: to.Description,
					DueDate:     due,
					Priority:    priority,
					Subject:     to.Subject,
				},
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddTaskArgs(cmd, to)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addTaskList(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Example: `
studyplan task list
studyplan task list --filter overdue
studyplan task list --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			filter, err := fo.GetFilter()
			if err != nil {
				return oo.HandleError(err)
			}
			s := get.Tasks{
				Filter:      filter,
				ShowID:      oo.ShowID,
				JSON:        oo.JSON,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addTaskDone(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"complete", "toggle"},
		Short:   "Toggle task completion",
		Example: `
studyplan task done 171dff69-f8b9-4dca-9c4e-2d7a1b3f5c6d
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := complete.Complete{
				ID:          args[0],
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addTaskEdit(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit task fields",
		Example: `
studyplan task edit <id> --title="Read chapter 4" --priority=low
studyplan task edit <id> --clear-due
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.Task{
				ID:          args[0],
				ClearDue:    to.ClearDue,
				Persistence: p,
			}
			if cmd.Flags().Changed("title") {
				s.Title = &to.Title
			}
			if cmd.Flags().Changed("desc") {
				s.Description = &to.Description
			}
			if cmd.Flags().Changed("due") {
				due, err := to.GetDue()
				if err != nil {
					return oo.HandleError(err)
				}
				s.DueDate = due
			}
			if cmd.Flags().Changed("priority") {
				priority, err := to.GetPriority()
				if err != nil {
					return oo.HandleError(err)
				}
				s.Priority = &priority
			}
			if cmd.Flags().Changed("subject") {
				s.Subject = &to.Subject
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVarP(&to.Title, "title", "t", "", "Rename the task.")
	options.AddTaskArgs(cmd, to)
	options.AddClearDueArg(cmd, to)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addTaskRemove(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete", "remove"},
		Short:   "Delete a task",
		Example: `
studyplan task rm 171dff69-f8b9-4dca-9c4e-2d7a1b3f5c6d
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := remove.Task{
				ID:          args[0],
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
