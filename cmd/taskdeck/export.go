package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/export"
	"github.com/taskdeck/taskdeck/internal/model"
)

func exportCmd() *cobra.Command {
	var (
		format string
		status string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks to a JSON or CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			tasks := a.store.OrderedTasks()
			categories := a.store.Categories()
			filter := model.StatusFilter(status)
			now := time.Now()

			var (
				payload []byte
				ext     string
			)
			switch format {
			case "json":
				payload, err = export.JSON(tasks, categories, filter, now)
				ext = "json"
			case "csv":
				payload, err = export.CSV(tasks, categories, filter)
				ext = "csv"
			default:
				return fmt.Errorf("unknown export format %q (want json or csv)", format)
			}
			if err != nil {
				return err
			}

			dir := outDir
			if dir == "" {
				dir = a.cfg.Export.Dir
			}
			name := export.Filename(len(tasks), ext, now)
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, payload, 0o644); err != nil {
				return fmt.Errorf("writing export file %s: %w", path, err)
			}

			fmt.Printf("Exported %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "export format (json, csv)")
	cmd.Flags().StringVarP(&status, "status", "s", "all", "status filter (all, active, completed)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (defaults to config export dir)")

	return cmd
}
