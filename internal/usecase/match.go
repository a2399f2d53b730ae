package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anonlabs/tictactoe-cli/internal/entity"
	"github.com/anonlabs/tictactoe-cli/internal/game"
	"github.com/anonlabs/tictactoe-cli/internal/repository"
)

// Positional defaults when a player leaves the name prompt blank.
const (
	DefaultName1 = "Player 1"
	DefaultName2 = "Player 2"
)

// Shell is everything the match manager needs from the terminal layer: the
// per-turn surface the round controller drives, plus the end-of-round result
// screen and the rematch question.
type Shell interface {
	game.Shell
	ShowResult(round *game.Round)
	OfferRematch(round *game.Round) (bool, error)
}

// MatchManager runs match sessions: it chains rematch rounds between the
// same two identities and commits scores and history when a round completes.
type MatchManager struct {
	logger  *slog.Logger
	scores  repository.ScoreRepository
	history repository.HistoryRepository

	now func() int64
}

func NewMatchManager(logger *slog.Logger, scores repository.ScoreRepository, history repository.HistoryRepository) *MatchManager {
	return &MatchManager{
		logger:  logger.With("component", "match"),
		scores:  scores,
		history: history,
		now:     func() int64 { return time.Now().Unix() },
	}
}

// Play - runs rounds between the two names until a round is aborted or the
// rematch is declined. Blank names get positional defaults before the names
// are normalized into Player identities. Persistence failures abort the
// session; a committed round is never silently lost.
func (that *MatchManager) Play(ctx context.Context, shell Shell, name1, name2 string) error {
	if strings.TrimSpace(name1) == "" {
		name1 = DefaultName1
	}
	if strings.TrimSpace(name2) == "" {
		name2 = DefaultName2
	}

	player1 := entity.NewPlayer(name1, entity.MarkerX)
	player2 := entity.NewPlayer(name2, entity.MarkerO)

	round := game.NewRound(player1, player2)

	for {
		if err := round.Run(shell); err != nil {
			return fmt.Errorf("round %d failed: %w", round.Number(), err)
		}

		if round.Status() == game.StatusAborted {
			that.logger.Info("round aborted", "round", round.Number())
			return nil
		}

		if err := that.commitRound(ctx, round); err != nil {
			return err
		}

		shell.ShowResult(round)

		rematch, err := shell.OfferRematch(round)
		if err != nil {
			return fmt.Errorf("failed to offer rematch: %w", err)
		}
		if !rematch {
			return nil
		}

		round = round.NextRound()
	}
}

// commitRound - persists the outcome of a won or drawn round: score upserts
// first, then one history record. A draw awards a win to both players; the
// score table deliberately has no separate draw tally.
func (that *MatchManager) commitRound(ctx context.Context, round *game.Round) error {
	switch round.Status() {
	case game.StatusWon:
		winner := round.Winner()
		winner.AddScore()
		if err := that.scores.AddWin(ctx, winner.Name); err != nil {
			return fmt.Errorf("failed to commit win: %w", err)
		}
	case game.StatusDraw:
		for _, player := range round.Players() {
			player.AddScore()
			if err := that.scores.AddWin(ctx, player.Name); err != nil {
				return fmt.Errorf("failed to commit draw: %w", err)
			}
		}
	default:
		return nil
	}

	players := round.Players()
	record := entity.HistoryRecord{
		Player1:   players[0].Name,
		Player2:   players[1].Name,
		Timestamp: that.now(),
	}
	if winner := round.Winner(); winner != nil {
		name := winner.Name
		record.Winner = &name
	}

	if err := that.history.Append(ctx, record); err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}

	that.logger.Info("round completed",
		"round", round.Number(),
		"status", string(round.Status()),
	)

	return nil
}
