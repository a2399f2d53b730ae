package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ncruces/go-sqlite3"

	"github.com/anonlabs/tictactoe-cli/internal/entity"
)

// ScoreRepository holds cumulative win counts keyed by normalized player
// name. A draw counts as a win for both sides, so every row's count equals
// wins plus draws for that name.
type ScoreRepository interface {
	// AddWin upserts the name's win count: a first win inserts a row with
	// count 1, later wins increment it.
	AddWin(ctx context.Context, name string) error
	// List returns all rows ordered by score descending.
	List(ctx context.Context) ([]entity.ScoreRecord, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type sqliteScores struct {
	db *sqlx.DB
}

func NewScoreRepository(db *sqlx.DB) ScoreRepository {
	return &sqliteScores{
		db: db,
	}
}

// AddWin - tries the insert first and falls back to an increment when the
// name already has a row. The primary key on name guarantees two concurrent
// first-time commits converge on one row. Each call is its own transaction,
// committed or rolled back before returning.
func (that *sqliteScores) AddWin(ctx context.Context, name string) error {
	tx, err := that.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op once committed

	_, err = tx.ExecContext(ctx, `INSERT INTO scores (name, score) VALUES (?, 1)`, name)
	if isConstraintViolation(err) {
		_, err = tx.ExecContext(ctx, `UPDATE scores SET score = score + 1 WHERE name = ?`, name)
	}
	if err != nil {
		return fmt.Errorf("can't record win for %q: %w", name, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit win for %q: %w", name, err)
	}

	return nil
}

func (that *sqliteScores) List(ctx context.Context) ([]entity.ScoreRecord, error) {
	var records []entity.ScoreRecord

	query := `SELECT name, score FROM scores ORDER BY score DESC`
	if err := that.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("can't list scores: %w", err)
	}

	return records, nil
}

func (that *sqliteScores) Count(ctx context.Context) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM scores`
	if err := that.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("can't count scores: %w", err)
	}

	return count, nil
}

func (that *sqliteScores) DeleteAll(ctx context.Context) error {
	if _, err := that.db.ExecContext(ctx, `DELETE FROM scores`); err != nil {
		return fmt.Errorf("can't delete scores: %w", err)
	}

	return nil
}

func isConstraintViolation(err error) bool {
	var sqliteErr *sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.CONSTRAINT
	}

	return false
}
