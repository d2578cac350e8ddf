package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/demureom-ctrl/Game/internal/config"
	"github.com/demureom-ctrl/Game/internal/maintenance"
	"github.com/demureom-ctrl/Game/internal/question"
)

func newMergeCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "merge-categories",
		Short: "Merge duplicate categories configured under maintenance.category_merges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cfg.Database.Driver == config.DriverSQLite {
				if _, err := os.Stat(cfg.Database.Path); errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("database %s not found", cfg.Database.Path)
				}
			}

			merges := make([]question.CategoryMerge, len(cfg.Maintenance.CategoryMerges))
			for i, m := range cfg.Maintenance.CategoryMerges {
				merges[i] = question.CategoryMerge{From: m.From, To: m.To}
			}
			if len(merges) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No category merges configured.")
				return nil
			}

			db, err := openDatabase(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			merger := maintenance.NewCategoryMerger(question.NewDBQuestionRepository(db), cmd.OutOrStdout())
			if _, err := merger.Merge(ctx, merges); err != nil {
				return fmt.Errorf("merge categories: %w", err)
			}
			return nil
		},
	}
}
