package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/demureom-ctrl/Game/internal/datasync"
	"github.com/demureom-ctrl/Game/internal/extract"
	"github.com/demureom-ctrl/Game/internal/question"
)

func newImportCommand() *cobra.Command {
	var document string
	var literal string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import questions embedded in a web page into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if document == "" {
				document = cfg.Import.Document
			}
			if literal == "" {
				literal = cfg.Import.LiteralName
			}

			source := datasync.NewDocumentSource(document, time.Duration(cfg.Import.TimeoutSeconds)*time.Second)
			content, err := source.Read(ctx)
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}
			records, err := extract.Extract(content, literal)
			if err != nil {
				return fmt.Errorf("extract questions from %s: %w", document, err)
			}

			db, err := openDatabase(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			importer := datasync.NewImporter(question.NewDBQuestionRepository(db), out)
			result, err := importer.ImportQuestions(ctx, records, datasync.ImportOptions{DryRun: dryRun})
			if err != nil {
				return fmt.Errorf("import questions: %w", err)
			}

			if dryRun {
				fmt.Fprintln(out, "(dry-run mode, no changes made)")
			}
			fmt.Fprintf(out, "Inserted: %d, Skipped: %d\n", result.Inserted, result.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&document, "document", "", "Path or http(s) URL of the page embedding the questions (default from config)")
	cmd.Flags().StringVar(&literal, "literal", "", "Name of the embedded question array (default from config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	return cmd
}
