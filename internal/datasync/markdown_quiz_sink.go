package datasync

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/demureom-ctrl/Game/internal/question"
)

// MarkdownQuizSink writes questions as a printable quiz sheet.
type MarkdownQuizSink struct {
	outputDir string
}

// NewMarkdownQuizSink creates a new MarkdownQuizSink.
func NewMarkdownQuizSink(outputDir string) *MarkdownQuizSink {
	return &MarkdownQuizSink{outputDir: outputDir}
}

// WriteAll writes questions.md grouped by category and difficulty and returns its path.
func (s *MarkdownQuizSink) WriteAll(questions []question.Question) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(s.outputDir, "questions.md")
	if err := os.WriteFile(path, renderQuizSheet(questions), 0o644); err != nil {
		return "", fmt.Errorf("write questions.md: %w", err)
	}
	return path, nil
}

func renderQuizSheet(questions []question.Question) []byte {
	byCategory := make(map[string]map[int][]question.Question)
	for _, q := range questions {
		if byCategory[q.Category] == nil {
			byCategory[q.Category] = make(map[int][]question.Question)
		}
		byCategory[q.Category][q.Difficulty] = append(byCategory[q.Category][q.Difficulty], q)
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var buf bytes.Buffer
	buf.WriteString("# Trivia Questions\n")
	for _, category := range categories {
		fmt.Fprintf(&buf, "\n## %s\n", category)

		levels := make([]int, 0, len(byCategory[category]))
		for level := range byCategory[category] {
			levels = append(levels, level)
		}
		sort.Ints(levels)

		for _, level := range levels {
			fmt.Fprintf(&buf, "\n### Level %d (%d points)\n", level, level*100)
			for i, q := range byCategory[category][level] {
				fmt.Fprintf(&buf, "\n**%d. %s**\n", i+1, q.Question)
				if len(q.Options) > 0 {
					buf.WriteString("\n")
					for _, option := range q.Options {
						fmt.Fprintf(&buf, "- %s\n", option)
					}
				}
				fmt.Fprintf(&buf, "\n> **Answer:** %s\n", q.Answer)
			}
		}
	}
	return buf.Bytes()
}
