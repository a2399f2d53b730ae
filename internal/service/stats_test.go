package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonlabs/tictactoe-cli/internal/apperror"
	"github.com/anonlabs/tictactoe-cli/internal/entity"
	"github.com/anonlabs/tictactoe-cli/internal/repository"
	"github.com/anonlabs/tictactoe-cli/internal/repository/storage"
)

func newStatsService(t *testing.T) (StatsService, repository.ScoreRepository, repository.HistoryRepository) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tictactoe_test.db")

	sqliteStorage, err := storage.NewSQLiteStorage(path)
	require.NoError(t, err)
	require.NoError(t, sqliteStorage.Init(context.Background()))

	t.Cleanup(func() {
		require.NoError(t, sqliteStorage.Close())
	})

	scores := repository.NewScoreRepository(sqliteStorage.Connection)
	history := repository.NewHistoryRepository(sqliteStorage.Connection)

	return NewStatsService(scores, history), scores, history
}

func seed(t *testing.T, scores repository.ScoreRepository, history repository.HistoryRepository) {
	t.Helper()

	ctx := context.Background()

	require.NoError(t, scores.AddWin(ctx, "Alice"))
	require.NoError(t, scores.AddWin(ctx, "Bob"))

	winner := "Alice"
	require.NoError(t, history.Append(ctx, entity.HistoryRecord{Player1: "Alice", Player2: "Bob", Winner: &winner, Timestamp: 100}))
	require.NoError(t, history.Append(ctx, entity.HistoryRecord{Player1: "Bob", Player2: "Alice", Timestamp: 200}))
}

func TestStatsService_Reset(t *testing.T) {
	t.Run("invalid target is rejected before deleting anything", func(t *testing.T) {
		stats, scores, history := newStatsService(t)
		seed(t, scores, history)

		// When: resetting an unknown target
		err := stats.Reset(context.Background(), ResetTarget("Everything"))

		// Then: the call fails and both tables are untouched
		require.ErrorIs(t, err, apperror.ErrInvalidResetTarget)

		scoreCount, historyCount, err := stats.Counts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, scoreCount)
		assert.Equal(t, 2, historyCount)
	})

	t.Run("history target leaves the leaderboard alone", func(t *testing.T) {
		stats, scores, history := newStatsService(t)
		seed(t, scores, history)

		require.NoError(t, stats.Reset(context.Background(), ResetHistory))

		scoreCount, historyCount, err := stats.Counts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, scoreCount)
		assert.Zero(t, historyCount)
	})

	t.Run("leaderboard target leaves history alone", func(t *testing.T) {
		stats, scores, history := newStatsService(t)
		seed(t, scores, history)

		require.NoError(t, stats.Reset(context.Background(), ResetLeaderboard))

		scoreCount, historyCount, err := stats.Counts(context.Background())
		require.NoError(t, err)
		assert.Zero(t, scoreCount)
		assert.Equal(t, 2, historyCount)
	})

	t.Run("all wipes both", func(t *testing.T) {
		stats, scores, history := newStatsService(t)
		seed(t, scores, history)

		require.NoError(t, stats.Reset(context.Background(), ResetAll))

		scoreCount, historyCount, err := stats.Counts(context.Background())
		require.NoError(t, err)
		assert.Zero(t, scoreCount)
		assert.Zero(t, historyCount)
	})
}

func TestStatsService_Reads(t *testing.T) {
	stats, scores, history := newStatsService(t)
	seed(t, scores, history)

	leaderboard, err := stats.Leaderboard(context.Background())
	require.NoError(t, err)
	assert.Len(t, leaderboard, 2)

	records, err := stats.History(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Alice", records[0].Player1)
	assert.Nil(t, records[1].Winner)
}
