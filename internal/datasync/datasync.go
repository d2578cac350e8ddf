// Package datasync provides import/export orchestration between source documents, files and the database.
package datasync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/demureom-ctrl/Game/internal/question"
)

// ErrStorage is returned when reading or writing the question store fails during an import.
var ErrStorage = errors.New("storage failure")

var (
	newLabel  = color.New(color.FgGreen).SprintFunc()
	skipLabel = color.New(color.FgYellow).SprintFunc()
)

// ImportResult tracks counts for an import run.
type ImportResult struct {
	Inserted int
	Skipped  int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
}

// Importer merges extracted question records into the database.
type Importer struct {
	questionRepo question.QuestionRepository
	writer       io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(questionRepo question.QuestionRepository, writer io.Writer) *Importer {
	return &Importer{
		questionRepo: questionRepo,
		writer:       writer,
	}
}

// ImportQuestions inserts every record whose dedup key is not already stored.
// Existing keys are read once before the run; records repeated within the same
// batch are not compared with each other.
func (imp *Importer) ImportQuestions(ctx context.Context, records []question.Record, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult

	existing, err := imp.questionRepo.FindAllKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load existing questions: %w", ErrStorage, err)
	}
	slog.Debug("loaded existing question keys", "count", len(existing))

	newQuestions := make([]*question.Question, 0, len(records))
	for _, r := range records {
		if _, ok := existing[r.Key()]; ok {
			fmt.Fprintf(imp.writer, "  %s  %q (%s, %d)\n", skipLabel("[SKIP]"), r.Question, r.Category, r.Difficulty)
			result.Skipped++
			continue
		}
		fmt.Fprintf(imp.writer, "  %s  %q (%s, %d)\n", newLabel("[NEW]"), r.Question, r.Category, r.Difficulty)
		newQuestions = append(newQuestions, question.NewQuestion(r))
	}
	result.Inserted = len(newQuestions)

	if opts.DryRun || len(newQuestions) == 0 {
		return &result, nil
	}
	if err := imp.questionRepo.BatchCreate(ctx, newQuestions); err != nil {
		return nil, fmt.Errorf("%w: insert questions: %w", ErrStorage, err)
	}
	slog.Info("imported questions", "inserted", result.Inserted, "skipped", result.Skipped)
	return &result, nil
}

// Exporter reads questions from the database.
type Exporter struct {
	questionRepo question.QuestionRepository
}

// NewExporter creates a new Exporter.
func NewExporter(questionRepo question.QuestionRepository) *Exporter {
	return &Exporter{questionRepo: questionRepo}
}

// Export reads all questions from the database.
func (e *Exporter) Export(ctx context.Context) ([]question.Question, error) {
	questions, err := e.questionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("questionRepo.FindAll() > %w", err)
	}
	return questions, nil
}
