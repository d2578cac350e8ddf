// Package question provides the trivia question model and its storage.
package question

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Record is a question candidate read from a source document.
// It has no identity until it is persisted.
type Record struct {
	Category   string   `json:"category" yaml:"category"`
	Difficulty int      `json:"difficulty" yaml:"difficulty"`
	Question   string   `json:"question" yaml:"question"`
	Answer     string   `json:"answer" yaml:"answer"`
	Options    []string `json:"options" yaml:"options"`
}

// Key returns the deduplication key of the record.
func (r Record) Key() DedupKey {
	return DedupKey{Category: r.Category, Difficulty: r.Difficulty, Question: r.Question}
}

// DedupKey identifies a question for duplicate suppression on import.
type DedupKey struct {
	Category   string
	Difficulty int
	Question   string
}

// Question is a persisted trivia question.
type Question struct {
	ID         int64   `db:"id" json:"id" yaml:"id"`
	Category   string  `db:"category" json:"category" yaml:"category"`
	Difficulty int     `db:"difficulty" json:"difficulty" yaml:"difficulty"`
	Question   string  `db:"question" json:"question" yaml:"question"`
	Answer     string  `db:"answer" json:"answer" yaml:"answer"`
	Options    Options `db:"options" json:"options" yaml:"options"`
}

// NewQuestion converts a record into an unsaved question.
func NewQuestion(r Record) *Question {
	options := make(Options, len(r.Options))
	copy(options, r.Options)
	return &Question{
		Category:   r.Category,
		Difficulty: r.Difficulty,
		Question:   r.Question,
		Answer:     r.Answer,
		Options:    options,
	}
}

// Key returns the deduplication key of the question.
func (q Question) Key() DedupKey {
	return DedupKey{Category: q.Category, Difficulty: q.Difficulty, Question: q.Question}
}

// Options is the list of multiple-choice options, stored as a JSON array in a text column.
type Options []string

// Value implements driver.Valuer.
func (o Options) Value() (driver.Value, error) {
	if o == nil {
		o = Options{}
	}
	b, err := json.Marshal([]string(o))
	if err != nil {
		return nil, fmt.Errorf("marshal options: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner. NULL and empty values become an empty list.
func (o *Options) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*o = Options{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("scan options: unsupported type %T", src)
	}
	if len(data) == 0 {
		*o = Options{}
		return nil
	}

	var options []string
	if err := json.Unmarshal(data, &options); err != nil {
		return fmt.Errorf("unmarshal options: %w", err)
	}
	if options == nil {
		options = []string{}
	}
	*o = options
	return nil
}

// CategoryCount is the number of questions stored under a category.
type CategoryCount struct {
	Category string `db:"category" yaml:"category"`
	Count    int    `db:"count" yaml:"count"`
}

// CategoryMerge renames every question in From to To.
type CategoryMerge struct {
	From string
	To   string
}

// MergeResult reports how many questions a CategoryMerge moved.
type MergeResult struct {
	CategoryMerge
	Moved int64
}
