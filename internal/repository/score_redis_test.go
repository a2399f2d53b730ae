package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonlabs/tictactoe-cli/internal/entity"
	"github.com/anonlabs/tictactoe-cli/testing/suite"
)

func TestRedisScoreRepository_AddWin(t *testing.T) {
	ctx, st := suite.New(t)

	scoreRepo := NewRedisScoreRepository(st.Storage)

	// Given: two wins for the same name
	require.NoError(t, scoreRepo.AddWin(ctx, "Alice"))
	require.NoError(t, scoreRepo.AddWin(ctx, "Alice"))

	// Then: one field, count 2
	records, err := scoreRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, entity.ScoreRecord{Name: "Alice", Score: 2}, records[0])
}

func TestRedisScoreRepository_List(t *testing.T) {
	ctx, st := suite.New(t)

	scoreRepo := NewRedisScoreRepository(st.Storage)

	require.NoError(t, scoreRepo.AddWin(ctx, "Alice"))
	require.NoError(t, scoreRepo.AddWin(ctx, "Bob"))
	require.NoError(t, scoreRepo.AddWin(ctx, "Bob"))

	// When: the leaderboard is read
	records, err := scoreRepo.List(ctx)

	// Then: score-descending order
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Bob", records[0].Name)
	assert.Equal(t, 2, records[0].Score)
	assert.Equal(t, "Alice", records[1].Name)

	count, err := scoreRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRedisScoreRepository_DeleteAll(t *testing.T) {
	ctx, st := suite.New(t)

	scoreRepo := NewRedisScoreRepository(st.Storage)

	require.NoError(t, scoreRepo.AddWin(ctx, "Alice"))
	require.NoError(t, scoreRepo.DeleteAll(ctx))

	count, err := scoreRepo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
