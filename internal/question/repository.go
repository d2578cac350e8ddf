package question

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/demureom-ctrl/Game/internal/database"
)

const columns = "id, category, difficulty, question, answer, options"

//go:generate mockgen -source=repository.go -destination=../mocks/question/mock_repository.go -package=mock_question

// QuestionRepository defines operations for managing questions.
type QuestionRepository interface {
	FindAllKeys(ctx context.Context) (map[DedupKey]struct{}, error)
	BatchCreate(ctx context.Context, questions []*Question) error
	FindAll(ctx context.Context) ([]Question, error)
	FindByCategory(ctx context.Context, category string) ([]Question, error)
	FindByCategoryAndDifficulty(ctx context.Context, category string, difficulty int) ([]Question, error)
	FindByID(ctx context.Context, id int64) (*Question, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, q *Question) error
	Update(ctx context.Context, q *Question) error
	Delete(ctx context.Context, id int64) error
	CountByCategory(ctx context.Context) ([]CategoryCount, error)
	MergeCategories(ctx context.Context, merges []CategoryMerge) ([]MergeResult, error)
}

// DBQuestionRepository implements QuestionRepository with sqlx.
type DBQuestionRepository struct {
	db *sqlx.DB
}

// NewDBQuestionRepository creates a new DBQuestionRepository.
func NewDBQuestionRepository(db *sqlx.DB) *DBQuestionRepository {
	return &DBQuestionRepository{db: db}
}

// FindAllKeys returns the dedup key of every stored question.
func (r *DBQuestionRepository) FindAllKeys(ctx context.Context) (map[DedupKey]struct{}, error) {
	var rows []struct {
		Category   string `db:"category"`
		Difficulty int    `db:"difficulty"`
		Question   string `db:"question"`
	}
	if err := r.db.SelectContext(ctx, &rows, "SELECT category, difficulty, question FROM questions"); err != nil {
		return nil, fmt.Errorf("load question keys: %w", err)
	}

	keys := make(map[DedupKey]struct{}, len(rows))
	for _, row := range rows {
		keys[DedupKey{Category: row.Category, Difficulty: row.Difficulty, Question: row.Question}] = struct{}{}
	}
	return keys, nil
}

// BatchCreate inserts questions in a single transaction and sets their IDs.
// Either every question is stored or none is.
func (r *DBQuestionRepository) BatchCreate(ctx context.Context, questions []*Question) error {
	if len(questions) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, q := range questions {
			id, err := insert(ctx, tx, q)
			if err != nil {
				return err
			}
			q.ID = id
		}
		return nil
	})
}

// FindAll returns all questions ordered by ID.
func (r *DBQuestionRepository) FindAll(ctx context.Context) ([]Question, error) {
	questions := []Question{}
	if err := r.db.SelectContext(ctx, &questions, "SELECT "+columns+" FROM questions ORDER BY id"); err != nil {
		return nil, fmt.Errorf("load all questions: %w", err)
	}
	return questions, nil
}

// FindByCategory returns the questions of a category ordered by ID.
func (r *DBQuestionRepository) FindByCategory(ctx context.Context, category string) ([]Question, error) {
	questions := []Question{}
	if err := r.db.SelectContext(ctx, &questions,
		"SELECT "+columns+" FROM questions WHERE category = ? ORDER BY id", category); err != nil {
		return nil, fmt.Errorf("load questions of %q: %w", category, err)
	}
	return questions, nil
}

// FindByCategoryAndDifficulty returns the questions of one category at one level.
func (r *DBQuestionRepository) FindByCategoryAndDifficulty(ctx context.Context, category string, difficulty int) ([]Question, error) {
	questions := []Question{}
	if err := r.db.SelectContext(ctx, &questions,
		"SELECT "+columns+" FROM questions WHERE category = ? AND difficulty = ? ORDER BY id", category, difficulty); err != nil {
		return nil, fmt.Errorf("load questions of %q at level %d: %w", category, difficulty, err)
	}
	return questions, nil
}

// FindByID returns a question by ID, or nil if not found.
func (r *DBQuestionRepository) FindByID(ctx context.Context, id int64) (*Question, error) {
	var q Question
	err := r.db.GetContext(ctx, &q, "SELECT "+columns+" FROM questions WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load question %d: %w", id, err)
	}
	return &q, nil
}

// Categories returns the distinct categories in alphabetical order.
func (r *DBQuestionRepository) Categories(ctx context.Context) ([]string, error) {
	categories := []string{}
	if err := r.db.SelectContext(ctx, &categories, "SELECT DISTINCT category FROM questions ORDER BY category"); err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	return categories, nil
}

// Create inserts a question and sets its ID.
func (r *DBQuestionRepository) Create(ctx context.Context, q *Question) error {
	id, err := insert(ctx, r.db, q)
	if err != nil {
		return err
	}
	q.ID = id
	return nil
}

// Update overwrites every field of the question with the given ID.
func (r *DBQuestionRepository) Update(ctx context.Context, q *Question) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE questions SET category = ?, difficulty = ?, question = ?, answer = ?, options = ? WHERE id = ?",
		q.Category, q.Difficulty, q.Question, q.Answer, q.Options, q.ID)
	if err != nil {
		return fmt.Errorf("update question %d: %w", q.ID, err)
	}
	return nil
}

// Delete removes the question with the given ID.
func (r *DBQuestionRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM questions WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	return nil
}

// CountByCategory returns the number of questions per category.
func (r *DBQuestionRepository) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	counts := []CategoryCount{}
	if err := r.db.SelectContext(ctx, &counts,
		"SELECT category, COUNT(*) AS count FROM questions GROUP BY category ORDER BY category"); err != nil {
		return nil, fmt.Errorf("count questions by category: %w", err)
	}
	return counts, nil
}

// MergeCategories applies the merges in order within one transaction.
func (r *DBQuestionRepository) MergeCategories(ctx context.Context, merges []CategoryMerge) ([]MergeResult, error) {
	results := make([]MergeResult, 0, len(merges))
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, m := range merges {
			res, err := tx.ExecContext(ctx, "UPDATE questions SET category = ? WHERE category = ?", m.To, m.From)
			if err != nil {
				return fmt.Errorf("merge category %q into %q: %w", m.From, m.To, err)
			}
			moved, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("count merged questions of %q: %w", m.From, err)
			}
			results = append(results, MergeResult{CategoryMerge: m, Moved: moved})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func insert(ctx context.Context, exec sqlx.ExecerContext, q *Question) (int64, error) {
	res, err := exec.ExecContext(ctx,
		"INSERT INTO questions (category, difficulty, question, answer, options) VALUES (?, ?, ?, ?, ?)",
		q.Category, q.Difficulty, q.Question, q.Answer, q.Options)
	if err != nil {
		return 0, fmt.Errorf("insert question %q: %w", q.Question, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get question insert ID: %w", err)
	}
	return id, nil
}
