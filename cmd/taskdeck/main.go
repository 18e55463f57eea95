package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/persist"
	"github.com/taskdeck/taskdeck/internal/store"
)

var Version = "dev"

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "taskdeck",
		Short:         "taskdeck - personal task tracking engine",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", model.DefaultConfigPath(), "config file path")

	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(completeCmd())
	rootCmd.AddCommand(deleteCmd())
	rootCmd.AddCommand(moveCmd())
	rootCmd.AddCommand(categoryCmd())
	rootCmd.AddCommand(tagCmd())
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app bundles everything a command needs: config, the rehydrated store,
// and the handles to close afterward.
type app struct {
	cfg   *model.AppConfig
	store *store.Store
	kv    *persist.SQLiteKV
	log   *zap.Logger
}

// openApp loads the config, opens the snapshot database, and rehydrates
// the store.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(cfg.Storage.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory %s: %w", dir, err)
		}
	}
	kv, err := persist.NewSQLiteKV(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	log, err := zap.NewProduction()
	if err != nil {
		kv.Close()
		return nil, fmt.Errorf("building logger: %w", err)
	}

	return &app{
		cfg:   cfg,
		store: store.New(ctx, kv, store.WithLogger(log)),
		kv:    kv,
		log:   log,
	}, nil
}

func (a *app) close() {
	a.log.Sync()
	a.kv.Close()
}

// resolveCategory maps a category name (case-insensitive) or id to its id.
func resolveCategory(s *store.Store, nameOrID string) (string, error) {
	if _, err := s.CategoryByID(nameOrID); err == nil {
		return nameOrID, nil
	}
	for _, cat := range s.Categories() {
		if strings.EqualFold(cat.Name, nameOrID) {
			return cat.ID, nil
		}
	}
	return "", model.ErrCategoryNotFound
}
