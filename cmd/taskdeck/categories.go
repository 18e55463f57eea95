package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/store"
)

func categoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Manage categories",
	}
	cmd.AddCommand(categoryAddCmd())
	cmd.AddCommand(categoryListCmd())
	cmd.AddCommand(categoryUpdateCmd())
	cmd.AddCommand(categoryDeleteCmd())
	return cmd
}

func categoryAddCmd() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			cat, err := a.store.AddCategory(ctx, store.CategoryInput{
				Name:  args[0],
				Color: color,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Added category %s (%s, %s)\n", cat.Name, cat.ID, cat.Color)
			return nil
		},
	}

	cmd.Flags().StringVarP(&color, "color", "c", "", "6-digit hex color, with or without '#'")

	return cmd
}

func categoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCOLOR")
			for _, cat := range a.store.Categories() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", cat.ID, cat.Name, cat.Color)
			}
			return w.Flush()
		},
	}
}

func categoryUpdateCmd() *cobra.Command {
	var (
		name  string
		color string
	)

	cmd := &cobra.Command{
		Use:   "update [name-or-id]",
		Short: "Rename or recolor a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			id, err := resolveCategory(a.store, args[0])
			if err != nil {
				return err
			}

			var patch store.CategoryPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &color
			}

			cat, err := a.store.UpdateCategory(ctx, id, patch)
			if err != nil {
				return err
			}
			fmt.Printf("Updated category %s (%s)\n", cat.Name, cat.Color)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&color, "color", "", "new 6-digit hex color")

	return cmd
}

func categoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [name-or-id]",
		Short: "Delete a category; its tasks become uncategorized",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			id, err := resolveCategory(a.store, args[0])
			if err != nil {
				return err
			}
			if err := a.store.DeleteCategory(ctx, id); err != nil {
				return err
			}
			fmt.Println("Deleted category")
			return nil
		},
	}
}
