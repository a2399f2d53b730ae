package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonlabs/tictactoe-cli/internal/entity"
	"github.com/anonlabs/tictactoe-cli/testing/suite"
)

func TestRedisHistoryRepository_Append(t *testing.T) {
	ctx, st := suite.New(t)

	historyRepo := NewRedisHistoryRepository(st.Storage)

	winner := "Alice"
	rounds := []entity.HistoryRecord{
		{Player1: "Alice", Player2: "Bob", Winner: &winner, Timestamp: 100},
		{Player1: "Bob", Player2: "Alice", Timestamp: 200},
	}
	for _, record := range rounds {
		require.NoError(t, historyRepo.Append(ctx, record))
	}

	// When: the log is read back
	records, err := historyRepo.List(ctx)

	// Then: both records survive the JSON round trip, in order
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, rounds[0], records[0])
	assert.Equal(t, rounds[1], records[1])
	assert.Nil(t, records[1].Winner)

	count, err := historyRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRedisHistoryRepository_DeleteAll(t *testing.T) {
	ctx, st := suite.New(t)

	historyRepo := NewRedisHistoryRepository(st.Storage)

	require.NoError(t, historyRepo.Append(ctx, entity.HistoryRecord{Player1: "Alice", Player2: "Bob", Timestamp: 1}))
	require.NoError(t, historyRepo.DeleteAll(ctx))

	count, err := historyRepo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
