package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/anonlabs/tictactoe-cli/internal/entity"
)

const scoresKey = "tictactoe:scores"

type redisScores struct {
	client *redis.Client
}

// NewRedisScoreRepository - a ScoreRepository on a redis hash, for sharing
// one leaderboard between machines. HINCRBY is an atomic upsert, so the
// insert-then-update dance the sqlite backend does is a single command here.
func NewRedisScoreRepository(client *redis.Client) ScoreRepository {
	return &redisScores{
		client: client,
	}
}

func (that *redisScores) AddWin(ctx context.Context, name string) error {
	if err := that.client.HIncrBy(ctx, scoresKey, name, 1).Err(); err != nil {
		return fmt.Errorf("can't record win for %q: %w", name, err)
	}

	return nil
}

func (that *redisScores) List(ctx context.Context) ([]entity.ScoreRecord, error) {
	fields, err := that.client.HGetAll(ctx, scoresKey).Result()
	if err != nil {
		return nil, fmt.Errorf("can't list scores: %w", err)
	}

	records := make([]entity.ScoreRecord, 0, len(fields))
	for name, raw := range fields {
		score, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("can't parse score for %q: %w", name, err)
		}

		records = append(records, entity.ScoreRecord{Name: name, Score: score})
	}

	// hash iteration order is unspecified; name breaks score ties
	sort.Slice(records, func(i, j int) bool {
		if records[i].Score != records[j].Score {
			return records[i].Score > records[j].Score
		}
		return records[i].Name < records[j].Name
	})

	return records, nil
}

func (that *redisScores) Count(ctx context.Context) (int, error) {
	count, err := that.client.HLen(ctx, scoresKey).Result()
	if err != nil {
		return 0, fmt.Errorf("can't count scores: %w", err)
	}

	return int(count), nil
}

func (that *redisScores) DeleteAll(ctx context.Context) error {
	if err := that.client.Del(ctx, scoresKey).Err(); err != nil {
		return fmt.Errorf("can't delete scores: %w", err)
	}

	return nil
}
