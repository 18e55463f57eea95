package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/store"
)

func addCmd() *cobra.Command {
	var (
		description string
		priority    string
		due         string
		category    string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			in := store.TaskInput{
				Title:       args[0],
				Description: description,
				Priority:    model.Priority(priority),
				Tags:        tags,
			}
			if due != "" {
				parsed, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("parsing due date %q: %w", due, err)
				}
				in.DueDate = &parsed
			}
			if category != "" {
				id, err := resolveCategory(a.store, category)
				if err != nil {
					return err
				}
				in.CategoryID = &id
			}

			task, err := a.store.AddTask(ctx, in)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s (%s)\n", task.Title, task.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "d", "", "task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "priority (low, medium, high, critical)")
	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category name or id")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "tags (repeatable)")

	return cmd
}

func listCmd() *cobra.Command {
	var (
		status     string
		categories []string
		tags       []string
		search     string
		sortBy     string
		sortDesc   bool
		ordered    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks through the composed filter/search/sort view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			var tasks []model.Task
			if ordered {
				tasks = a.store.OrderedTasks()
			} else {
				spec := a.store.ViewSpec()
				if cmd.Flags().Changed("status") {
					spec.Status = model.StatusFilter(status)
				}
				if len(categories) > 0 {
					spec.CategoryIDs = spec.CategoryIDs[:0]
					for _, name := range categories {
						if name == model.UncategorizedFilter {
							spec.CategoryIDs = append(spec.CategoryIDs, name)
							continue
						}
						id, err := resolveCategory(a.store, name)
						if err != nil {
							return err
						}
						spec.CategoryIDs = append(spec.CategoryIDs, id)
					}
				}
				if len(tags) > 0 {
					spec.Tags = tags
				}
				if search != "" {
					spec.Search = search
				}
				if cmd.Flags().Changed("sort") {
					spec.SortKey = model.SortKey(sortBy)
				}
				if cmd.Flags().Changed("desc") {
					spec.SortDirection = model.SortAsc
					if sortDesc {
						spec.SortDirection = model.SortDesc
					}
				}
				tasks = a.store.Query(spec)
			}

			printTasks(a.store, tasks)
			counts := a.store.TaskCounts()
			fmt.Printf("\n%d shown / %d total (%d active, %d completed)\n",
				len(tasks), counts.Total, counts.Active, counts.Completed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "all", "status filter (all, active, completed)")
	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "category filter (names, ids, or 'uncategorized')")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "tag filter (any of, case-insensitive)")
	cmd.Flags().StringVarP(&search, "search", "q", "", "free-text search over title and description")
	cmd.Flags().StringVar(&sortBy, "sort", "created_at", "sort key (created_at, priority, title, due_date)")
	cmd.Flags().BoolVar(&sortDesc, "desc", false, "sort descending")
	cmd.Flags().BoolVar(&ordered, "ordered", false, "show manual custom order instead")

	return cmd
}

func completeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete [id]",
		Short: "Toggle a task's completion state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			task, err := a.store.ToggleComplete(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s is now %s\n", task.Title, task.Status)
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm [id...]",
		Short: "Delete one or more tasks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if len(args) == 1 {
				if err := a.store.DeleteTask(ctx, args[0]); err != nil {
					return err
				}
			} else {
				a.store.BulkDelete(ctx, args)
			}
			fmt.Printf("Deleted %d task(s)\n", len(args))
			return nil
		},
	}
}

func moveCmd() *cobra.Command {
	var (
		up   bool
		down bool
		to   int
	)

	cmd := &cobra.Command{
		Use:   "move [id]",
		Short: "Move a task within the manual custom order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			id := args[0]
			switch {
			case up:
				return a.store.MoveUp(ctx, id)
			case down:
				return a.store.MoveDown(ctx, id)
			case cmd.Flags().Changed("to"):
				return a.store.MoveToPosition(ctx, id, to)
			default:
				return fmt.Errorf("one of --up, --down, or --to is required")
			}
		},
	}

	cmd.Flags().BoolVar(&up, "up", false, "swap with the task above")
	cmd.Flags().BoolVar(&down, "down", false, "swap with the task below")
	cmd.Flags().IntVar(&to, "to", 0, "move to this position (0-based)")

	return cmd
}

func printTasks(s *store.Store, tasks []model.Task) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPRI\tTITLE\tDUE\tCATEGORY\tTAGS")
	for _, task := range tasks {
		due := ""
		if task.DueDate != nil {
			due = task.DueDate.UTC().Format("2006-01-02")
		}
		category := ""
		if task.CategoryID != nil {
			if cat, err := s.CategoryByID(*task.CategoryID); err == nil {
				category = cat.Name
			}
		}
		mark := " "
		if task.Status == model.StatusCompleted {
			mark = "x"
		}
		fmt.Fprintf(w, "%s\t[%s]\t%s\t%s\t%s\t%s\t%s\n",
			task.ID, mark, task.Priority, task.Title, due, category,
			strings.Join(task.Tags, ";"))
	}
	w.Flush()
}
