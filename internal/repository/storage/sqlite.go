package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

type SQLiteStorage struct {
	Connection *sqlx.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	conn, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &SQLiteStorage{Connection: conn}, nil
}

// Init - creates the scores and history tables. The name column is the
// scores table's primary key; the score upsert relies on that constraint.
func (that *SQLiteStorage) Init(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS scores (
			name TEXT PRIMARY KEY,
			score INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS history (
			player1 TEXT NOT NULL,
			player2 TEXT NOT NULL,
			winner TEXT,
			timestamp INTEGER NOT NULL
		)`,
	}

	for _, query := range queries {
		if _, err := that.Connection.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("can't create table: %w", err)
		}
	}

	return nil
}

func (that *SQLiteStorage) Close() error {
	return that.Connection.Close()
}
