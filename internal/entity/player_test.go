package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	t.Run("normalizes the name", func(t *testing.T) {
		player := NewPlayer("  alice smith ", MarkerX)

		assert.Equal(t, "Alice Smith", player.Name)
		assert.Equal(t, MarkerX, player.Marker)
		assert.Empty(t, player.Moves)
		assert.Zero(t, player.Score)
	})

	t.Run("already-titled names pass through", func(t *testing.T) {
		player := NewPlayer("Bob", MarkerO)

		assert.Equal(t, "Bob", player.Name)
	})
}

func TestPlayer_AddMove(t *testing.T) {
	// Given: moves arriving out of order
	player := NewPlayer("alice", MarkerX)

	player.AddMove(7)
	player.AddMove(1)
	player.AddMove(5)

	// Then: the move list stays sorted ascending
	assert.Equal(t, []int{1, 5, 7}, player.Moves)

	require.True(t, player.HasMove(5))
	require.False(t, player.HasMove(2))
}

func TestPlayer_ResetMoves(t *testing.T) {
	// Given: a player with moves and a score from a previous round
	player := NewPlayer("alice", MarkerX)
	player.AddMove(1)
	player.AddScore()

	// When: the next round starts
	player.ResetMoves()

	// Then: only the moves are gone; identity and score carry over
	assert.Empty(t, player.Moves)
	assert.Equal(t, 1, player.Score)
	assert.Equal(t, "Alice", player.Name)
}

func TestMarker(t *testing.T) {
	assert.Equal(t, "X", MarkerX.Symbol())
	assert.Equal(t, "O", MarkerO.Symbol())
	assert.Equal(t, "", MarkerNone.Symbol())

	assert.Equal(t, MarkerO, MarkerX.Other())
	assert.Equal(t, MarkerX, MarkerO.Other())
}
