// Package proverb stores the proverbs used by the guessing round.
package proverb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/demureom-ctrl/Game/internal/database"
)

// Proverb is a single saying.
type Proverb struct {
	ID      int64  `db:"id" json:"id"`
	Content string `db:"content" json:"content"`
}

//go:generate mockgen -source=proverb.go -destination=../mocks/proverb/mock_repository.go -package=mock_proverb

// ProverbRepository defines operations for managing proverbs.
type ProverbRepository interface {
	FindAll(ctx context.Context) ([]Proverb, error)
	Count(ctx context.Context) (int, error)
	BatchCreate(ctx context.Context, proverbs []*Proverb) error
	Random(ctx context.Context) (*Proverb, error)
	Create(ctx context.Context, p *Proverb) error
	Update(ctx context.Context, p *Proverb) error
	Delete(ctx context.Context, id int64) error
}

// DBProverbRepository implements ProverbRepository with sqlx.
type DBProverbRepository struct {
	db *sqlx.DB
}

// NewDBProverbRepository creates a new DBProverbRepository.
func NewDBProverbRepository(db *sqlx.DB) *DBProverbRepository {
	return &DBProverbRepository{db: db}
}

func (r *DBProverbRepository) FindAll(ctx context.Context) ([]Proverb, error) {
	proverbs := []Proverb{}
	if err := r.db.SelectContext(ctx, &proverbs, "SELECT id, content FROM proverbs ORDER BY id"); err != nil {
		return nil, fmt.Errorf("load proverbs: %w", err)
	}
	return proverbs, nil
}

// Random returns one proverb chosen by the database, or nil if there are none.
func (r *DBProverbRepository) Random(ctx context.Context) (*Proverb, error) {
	var p Proverb
	err := r.db.GetContext(ctx, &p, "SELECT id, content FROM proverbs ORDER BY "+randomFunc(r.db.DriverName())+" LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load random proverb: %w", err)
	}
	return &p, nil
}

func (r *DBProverbRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM proverbs"); err != nil {
		return 0, fmt.Errorf("count proverbs: %w", err)
	}
	return n, nil
}

// BatchCreate inserts proverbs in a single transaction and sets their IDs.
func (r *DBProverbRepository) BatchCreate(ctx context.Context, proverbs []*Proverb) error {
	if len(proverbs) == 0 {
		return nil
	}
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, p := range proverbs {
			if err := insert(ctx, tx, p); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DBProverbRepository) Create(ctx context.Context, p *Proverb) error {
	return insert(ctx, r.db, p)
}

func insert(ctx context.Context, exec sqlx.ExecerContext, p *Proverb) error {
	res, err := exec.ExecContext(ctx, "INSERT INTO proverbs (content) VALUES (?)", p.Content)
	if err != nil {
		return fmt.Errorf("insert proverb: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("get proverb insert ID: %w", err)
	}
	p.ID = id
	return nil
}

func (r *DBProverbRepository) Update(ctx context.Context, p *Proverb) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE proverbs SET content = ? WHERE id = ?", p.Content, p.ID); err != nil {
		return fmt.Errorf("update proverb %d: %w", p.ID, err)
	}
	return nil
}

func (r *DBProverbRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM proverbs WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete proverb %d: %w", id, err)
	}
	return nil
}

func randomFunc(driverName string) string {
	if driverName == "mysql" {
		return "RAND()"
	}
	return "RANDOM()"
}
