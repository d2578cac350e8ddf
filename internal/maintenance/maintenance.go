// Package maintenance provides one-off data fixes for the question store.
package maintenance

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/demureom-ctrl/Game/internal/question"
)

// CategoryMerger folds questions from one category into another.
type CategoryMerger struct {
	questionRepo question.QuestionRepository
	writer       io.Writer
}

// NewCategoryMerger creates a new CategoryMerger.
func NewCategoryMerger(questionRepo question.QuestionRepository, writer io.Writer) *CategoryMerger {
	return &CategoryMerger{
		questionRepo: questionRepo,
		writer:       writer,
	}
}

// Merge applies every merge in a single transaction and reports counts before and after.
// When any merge fails, none of them is applied.
func (m *CategoryMerger) Merge(ctx context.Context, merges []question.CategoryMerge) ([]question.MergeResult, error) {
	before, err := m.counts(ctx)
	if err != nil {
		return nil, err
	}
	for _, merge := range merges {
		fmt.Fprintf(m.writer, "Before: '%s'=%d, '%s'=%d\n", merge.From, before[merge.From], merge.To, before[merge.To])
	}

	results, err := m.questionRepo.MergeCategories(ctx, merges)
	if err != nil {
		return nil, fmt.Errorf("merge categories: %w", err)
	}
	for _, r := range results {
		fmt.Fprintf(m.writer, "Merged '%s' -> '%s' (%d questions)\n", r.From, r.To, r.Moved)
		slog.Debug("merged category", "from", r.From, "to", r.To, "moved", r.Moved)
	}

	final, err := m.questionRepo.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("count questions by category: %w", err)
	}
	fmt.Fprintln(m.writer, "\nFinal Category Counts:")
	for _, c := range final {
		fmt.Fprintf(m.writer, "- %s: %d\n", c.Category, c.Count)
	}
	return results, nil
}

func (m *CategoryMerger) counts(ctx context.Context) (map[string]int, error) {
	counts, err := m.questionRepo.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("count questions by category: %w", err)
	}
	byCategory := make(map[string]int, len(counts))
	for _, c := range counts {
		byCategory[c.Category] = c.Count
	}
	return byCategory, nil
}
