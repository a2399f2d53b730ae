package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/anonlabs/tictactoe-cli/internal/entity"
)

// HistoryRepository is the append-only log of completed rounds. Aborted
// rounds never reach it.
type HistoryRepository interface {
	Append(ctx context.Context, record entity.HistoryRecord) error
	// List returns all records in insertion order, which is chronological.
	List(ctx context.Context) ([]entity.HistoryRecord, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type sqliteHistory struct {
	db *sqlx.DB
}

func NewHistoryRepository(db *sqlx.DB) HistoryRepository {
	return &sqliteHistory{
		db: db,
	}
}

func (that *sqliteHistory) Append(ctx context.Context, record entity.HistoryRecord) error {
	tx, err := that.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op once committed

	query := `INSERT INTO history (player1, player2, winner, timestamp) VALUES (?, ?, ?, ?)`
	if _, err = tx.ExecContext(ctx, query, record.Player1, record.Player2, record.Winner, record.Timestamp); err != nil {
		return fmt.Errorf("can't append history record: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit history record: %w", err)
	}

	return nil
}

func (that *sqliteHistory) List(ctx context.Context) ([]entity.HistoryRecord, error) {
	var records []entity.HistoryRecord

	query := `SELECT player1, player2, winner, timestamp FROM history`
	if err := that.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("can't list history: %w", err)
	}

	return records, nil
}

func (that *sqliteHistory) Count(ctx context.Context) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM history`
	if err := that.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("can't count history: %w", err)
	}

	return count, nil
}

func (that *sqliteHistory) DeleteAll(ctx context.Context) error {
	if _, err := that.db.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return fmt.Errorf("can't delete history: %w", err)
	}

	return nil
}
