package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anonlabs/tictactoe-cli/internal/entity"
)

// StopSentinel returns the player to the main menu from any move prompt,
// discarding the round. Matched case-insensitively.
const StopSentinel = "?stop"

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
	StatusAborted    Status = "aborted"
)

// Shell is the presentation surface the round controller drives. The terminal
// transport implements it; tests script it.
type Shell interface {
	// RenderRound redraws the current scoreboard and board.
	RenderRound(round *Round)
	// PromptMove obtains one raw line of input for the player's move.
	PromptMove(player *entity.Player) (string, error)
	// RejectMove tells the player the last input was not a playable move.
	RejectMove()
}

// Round is one play-through from an empty board to a win, draw or abort.
// The two Player values are shared across rematch rounds; the Board and the
// players' move lists are rebuilt for each round.
type Round struct {
	number  int
	board   *entity.Board
	players [2]*entity.Player
	turn    int
	status  Status
	winner  *entity.Player
	combo   [3]int
}

// NewRound - starts round 1 of a match session. The first player gets X and
// moves first; the second gets O.
func NewRound(player1, player2 *entity.Player) *Round {
	player1.Marker = entity.MarkerX
	player2.Marker = entity.MarkerO

	return &Round{
		number:  1,
		board:   entity.NewBoard(),
		players: [2]*entity.Player{player1, player2},
		status:  StatusInProgress,
	}
}

// NextRound - builds the follow-up round for a rematch: fresh board, cleared
// move lists, and the markers rebound in reverse order so last round's second
// player takes X and moves first. Session scores stay with each player.
func (that *Round) NextRound() *Round {
	first, second := that.players[1], that.players[0]

	first.ResetMoves()
	first.Marker = entity.MarkerX
	second.ResetMoves()
	second.Marker = entity.MarkerO

	return &Round{
		number:  that.number + 1,
		board:   entity.NewBoard(),
		players: [2]*entity.Player{first, second},
		status:  StatusInProgress,
	}
}

// Run - drives the turn loop until the round reaches a terminal state.
// Bad move input never surfaces as an error; the same player is re-prompted
// until a playable move or the stop sentinel arrives. Only shell I/O failures
// propagate.
func (that *Round) Run(shell Shell) error {
	for that.status == StatusInProgress {
		shell.RenderRound(that)

		player := that.players[that.turn]

		for {
			input, err := shell.PromptMove(player)
			if err != nil {
				return fmt.Errorf("failed to read move: %w", err)
			}

			if strings.EqualFold(input, StopSentinel) {
				that.status = StatusAborted
				return nil
			}

			cell, ok := parseCell(input)
			if ok && that.board.Place(cell, player) {
				break
			}

			shell.RejectMove()
		}

		if won, combo := that.board.CheckWinner(player); won {
			that.winner = player
			that.combo = combo
			that.status = StatusWon
			continue
		}

		if that.board.IsFull() {
			that.status = StatusDraw
			continue
		}

		that.turn = 1 - that.turn
	}

	return nil
}

func (that *Round) Number() int { return that.number }

func (that *Round) Board() *entity.Board { return that.board }

// Players - the two players in this round's turn order.
func (that *Round) Players() [2]*entity.Player { return that.players }

func (that *Round) CurrentPlayer() *entity.Player { return that.players[that.turn] }

func (that *Round) Status() Status { return that.status }

// Winner - the winning player, or nil for a draw, an abort, or a round still
// in progress.
func (that *Round) Winner() *entity.Player { return that.winner }

// WinningCombo - the matched triple when the round was won.
func (that *Round) WinningCombo() ([3]int, bool) {
	return that.combo, that.status == StatusWon
}

// parseCell - accepts only a string of decimal digits naming a cell in [1,9].
// Signs, spaces and anything non-numeric are rejected here rather than left
// to strconv, which would let "+5" through.
func parseCell(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}

	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	cell, err := strconv.Atoi(raw)
	if err != nil || cell < entity.FirstCell || cell > entity.LastCell {
		return 0, false
	}

	return cell, true
}
