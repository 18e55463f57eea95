package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func tagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags across tasks",
	}
	cmd.AddCommand(tagListCmd())
	cmd.AddCommand(tagAddCmd())
	cmd.AddCommand(tagRemoveCmd())
	cmd.AddCommand(tagRenameCmd())
	cmd.AddCommand(tagMergeCmd())
	cmd.AddCommand(tagPurgeCmd())
	return cmd
}

func tagListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all distinct tags with usage counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			for _, tag := range a.store.AllTags() {
				fmt.Printf("%s (%d)\n", tag, a.store.TagUsageCount(tag))
			}
			return nil
		},
	}
}

func tagAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [task-id] [tag]",
		Short: "Add a tag to a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			task, err := a.store.AddTagToTask(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("%s tags: %v\n", task.Title, task.Tags)
			return nil
		},
	}
}

func tagRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [task-id] [tag]",
		Short: "Remove a tag from a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			task, err := a.store.RemoveTagFromTask(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("%s tags: %v\n", task.Title, task.Tags)
			return nil
		},
	}
}

func tagRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename [old] [new]",
		Short: "Rename a tag on every task carrying it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.store.RenameTagEverywhere(ctx, args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Renamed %q to %q\n", args[0], args[1])
			return nil
		},
	}
}

func tagMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge [target] [source...]",
		Short: "Merge source tags into a target tag across all tasks",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.store.MergeTagsEverywhere(ctx, args[1:], args[0]); err != nil {
				return err
			}
			fmt.Printf("Merged %v into %q\n", args[1:], args[0])
			return nil
		},
	}
}

func tagPurgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge [tag]",
		Short: "Remove a tag from every task carrying it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.store.RemoveTagEverywhere(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed %q everywhere\n", args[0])
			return nil
		},
	}
}
