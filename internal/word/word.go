// Package word stores the words used by the heads-up round.
package word

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/demureom-ctrl/Game/internal/database"
)

// Word is a term to guess within a category.
type Word struct {
	ID       int64  `db:"id" json:"id"`
	Category string `db:"category" json:"category"`
	Content  string `db:"content" json:"content"`
}

// Key identifies a word for duplicate suppression when seeding.
type Key struct {
	Category string
	Content  string
}

// Key returns the dedup key of the word.
func (w Word) Key() Key {
	return Key{Category: w.Category, Content: w.Content}
}

//go:generate mockgen -source=word.go -destination=../mocks/word/mock_repository.go -package=mock_word

// WordRepository defines operations for managing words.
type WordRepository interface {
	FindAll(ctx context.Context) ([]Word, error)
	FindAllKeys(ctx context.Context) (map[Key]struct{}, error)
	BatchCreate(ctx context.Context, words []*Word) error
	Create(ctx context.Context, w *Word) error
	Update(ctx context.Context, w *Word) error
	Delete(ctx context.Context, id int64) error
}

// DBWordRepository implements WordRepository with sqlx.
type DBWordRepository struct {
	db *sqlx.DB
}

// NewDBWordRepository creates a new DBWordRepository.
func NewDBWordRepository(db *sqlx.DB) *DBWordRepository {
	return &DBWordRepository{db: db}
}

func (r *DBWordRepository) FindAll(ctx context.Context) ([]Word, error) {
	words := []Word{}
	if err := r.db.SelectContext(ctx, &words, "SELECT id, category, content FROM words ORDER BY id"); err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}
	return words, nil
}

// FindAllKeys returns the (category, content) pair of every stored word.
func (r *DBWordRepository) FindAllKeys(ctx context.Context) (map[Key]struct{}, error) {
	var rows []Word
	if err := r.db.SelectContext(ctx, &rows, "SELECT category, content FROM words"); err != nil {
		return nil, fmt.Errorf("load word keys: %w", err)
	}
	keys := make(map[Key]struct{}, len(rows))
	for _, row := range rows {
		keys[row.Key()] = struct{}{}
	}
	return keys, nil
}

// BatchCreate inserts words in a single transaction and sets their IDs.
func (r *DBWordRepository) BatchCreate(ctx context.Context, words []*Word) error {
	if len(words) == 0 {
		return nil
	}
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, w := range words {
			if err := insert(ctx, tx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DBWordRepository) Create(ctx context.Context, w *Word) error {
	return insert(ctx, r.db, w)
}

func insert(ctx context.Context, exec sqlx.ExecerContext, w *Word) error {
	res, err := exec.ExecContext(ctx, "INSERT INTO words (category, content) VALUES (?, ?)", w.Category, w.Content)
	if err != nil {
		return fmt.Errorf("insert word: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("get word insert ID: %w", err)
	}
	w.ID = id
	return nil
}

func (r *DBWordRepository) Update(ctx context.Context, w *Word) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE words SET category = ?, content = ? WHERE id = ?", w.Category, w.Content, w.ID); err != nil {
		return fmt.Errorf("update word %d: %w", w.ID, err)
	}
	return nil
}

func (r *DBWordRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM words WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete word %d: %w", id, err)
	}
	return nil
}
