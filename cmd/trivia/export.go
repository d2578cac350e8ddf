package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/demureom-ctrl/Game/internal/datasync"
	"github.com/demureom-ctrl/Game/internal/pdf"
	"github.com/demureom-ctrl/Game/internal/question"
)

type ThemeFlag string

// Set implements pflag.Value.
func (t *ThemeFlag) Set(v string) error {
	switch v {
	case string(ThemeLight):
		*t = ThemeLight
	case string(ThemeDark):
		*t = ThemeDark
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, ThemeLight, ThemeDark)
	}
	return nil
}

// String implements pflag.Value.
func (t *ThemeFlag) String() string {
	if t == nil {
		return ""
	}
	return string(*t)
}

// Type implements pflag.Value.
func (t *ThemeFlag) Type() string {
	return "ThemeFlag"
}

var (
	_ pflag.Value = (*ThemeFlag)(nil)
)

const (
	ThemeLight ThemeFlag = "light"
	ThemeDark  ThemeFlag = "dark"
)

func newExportCommand() *cobra.Command {
	var outputDir string
	var generatePDF bool
	theme := ThemeLight

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export questions to YAML and optionally a PDF quiz sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if outputDir == "" {
				outputDir = cfg.Export.Directory
			}

			db, err := openDatabase(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			questions, err := datasync.NewExporter(question.NewDBQuestionRepository(db)).Export(ctx)
			if err != nil {
				return fmt.Errorf("export questions: %w", err)
			}

			yamlPath, err := datasync.NewYAMLQuestionSink(outputDir).WriteAll(questions)
			if err != nil {
				return fmt.Errorf("write YAML: %w", err)
			}
			fmt.Fprintf(out, "Exported %d questions to %s\n", len(questions), yamlPath)

			if !generatePDF {
				return nil
			}
			mdPath, err := datasync.NewMarkdownQuizSink(outputDir).WriteAll(questions)
			if err != nil {
				return fmt.Errorf("write quiz sheet: %w", err)
			}
			pdfPath, err := pdf.ConvertQuizSheet(mdPath, pdf.Options{Dark: theme == ThemeDark})
			if err != nil {
				return fmt.Errorf("convert quiz sheet to PDF: %w", err)
			}
			fmt.Fprintf(out, "PDF generated: %s\n", color.GreenString(pdfPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output", "", "Output directory (default from config)")
	cmd.Flags().BoolVar(&generatePDF, "pdf", false, "Also write a markdown quiz sheet and convert it to PDF")
	cmd.Flags().Var(&theme, "theme", "PDF theme. Options: light, dark")
	return cmd
}
