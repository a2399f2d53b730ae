package service

import (
	"context"
	"fmt"

	"github.com/anonlabs/tictactoe-cli/internal/apperror"
	"github.com/anonlabs/tictactoe-cli/internal/entity"
	"github.com/anonlabs/tictactoe-cli/internal/repository"
)

// ResetTarget names what the admin reset screen may wipe.
type ResetTarget string

const (
	ResetAll         ResetTarget = "all"
	ResetHistory     ResetTarget = "history"
	ResetLeaderboard ResetTarget = "leaderboard"
)

// StatsService serves the read-only screens (leaderboard, match history)
// and the admin reset, on whichever storage backend is configured.
type StatsService interface {
	Leaderboard(ctx context.Context) ([]entity.ScoreRecord, error)
	History(ctx context.Context) ([]entity.HistoryRecord, error)
	// Counts returns the scores and history row counts for the reset screen.
	Counts(ctx context.Context) (scores, history int, err error)
	// Reset wipes the target's table(s). An unknown target is rejected
	// before anything is deleted.
	Reset(ctx context.Context, target ResetTarget) error
}

type statsService struct {
	scores  repository.ScoreRepository
	history repository.HistoryRepository
}

func NewStatsService(scores repository.ScoreRepository, history repository.HistoryRepository) StatsService {
	return &statsService{
		scores:  scores,
		history: history,
	}
}

func (that *statsService) Leaderboard(ctx context.Context) ([]entity.ScoreRecord, error) {
	records, err := that.scores.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	return records, nil
}

func (that *statsService) History(ctx context.Context) ([]entity.HistoryRecord, error) {
	records, err := that.history.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	return records, nil
}

func (that *statsService) Counts(ctx context.Context) (int, int, error) {
	scores, err := that.scores.Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count scores: %w", err)
	}

	history, err := that.history.Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count history: %w", err)
	}

	return scores, history, nil
}

func (that *statsService) Reset(ctx context.Context, target ResetTarget) error {
	switch target {
	case ResetAll, ResetHistory, ResetLeaderboard:
	default:
		return fmt.Errorf("%w: %q", apperror.ErrInvalidResetTarget, target)
	}

	if target == ResetAll || target == ResetLeaderboard {
		if err := that.scores.DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to reset scores: %w", err)
		}
	}

	if target == ResetAll || target == ResetHistory {
		if err := that.history.DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to reset history: %w", err)
		}
	}

	return nil
}
