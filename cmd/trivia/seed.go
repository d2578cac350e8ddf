package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/demureom-ctrl/Game/internal/datasync"
	"github.com/demureom-ctrl/Game/internal/proverb"
	"github.com/demureom-ctrl/Game/internal/question"
	"github.com/demureom-ctrl/Game/internal/word"
)

func newSeedCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the questions, proverbs and words of a seed file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if file == "" {
				file = cfg.Seed.File
			}

			data, err := datasync.LoadSeedFile(file)
			if err != nil {
				return fmt.Errorf("load seed file: %w", err)
			}

			db, err := openDatabase(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			result, err := seed(ctx, db, data, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Questions inserted: %d, skipped: %d; proverbs inserted: %d; words inserted: %d, skipped: %d\n",
				result.Questions.Inserted, result.Questions.Skipped,
				result.Proverbs,
				result.Words.Inserted, result.Words.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Seed file path (default from config)")
	return cmd
}

func seed(ctx context.Context, db *sqlx.DB, data *datasync.SeedData, out io.Writer) (*datasync.SeedResult, error) {
	seeder := datasync.NewSeeder(
		question.NewDBQuestionRepository(db),
		proverb.NewDBProverbRepository(db),
		word.NewDBWordRepository(db),
		out,
	)
	result, err := seeder.Seed(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("seed store: %w", err)
	}
	return result, nil
}

// seedOnStart seeds from path when the file exists. A missing file is not an error.
func seedOnStart(ctx context.Context, db *sqlx.DB, path string, out io.Writer) error {
	data, err := datasync.LoadSeedFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("no seed file, skipping seeding", "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load seed file: %w", err)
	}
	_, err = seed(ctx, db, data, out)
	return err
}
