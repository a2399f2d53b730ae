package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/anonlabs/tictactoe-cli/internal/entity"
)

const historyKey = "tictactoe:history"

type redisHistory struct {
	client *redis.Client
}

// NewRedisHistoryRepository - a HistoryRepository on a redis list; RPUSH
// keeps insertion order, matching the sqlite backend's chronology.
func NewRedisHistoryRepository(client *redis.Client) HistoryRepository {
	return &redisHistory{
		client: client,
	}
}

func (that *redisHistory) Append(ctx context.Context, record entity.HistoryRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal history record: %w", err)
	}

	if err = that.client.RPush(ctx, historyKey, recordJSON).Err(); err != nil {
		return fmt.Errorf("can't append history record: %w", err)
	}

	return nil
}

func (that *redisHistory) List(ctx context.Context) ([]entity.HistoryRecord, error) {
	entries, err := that.client.LRange(ctx, historyKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("can't list history: %w", err)
	}

	records := make([]entity.HistoryRecord, 0, len(entries))
	for _, entry := range entries {
		var record entity.HistoryRecord
		if err = json.Unmarshal([]byte(entry), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history record: %w", err)
		}

		records = append(records, record)
	}

	return records, nil
}

func (that *redisHistory) Count(ctx context.Context) (int, error) {
	count, err := that.client.LLen(ctx, historyKey).Result()
	if err != nil {
		return 0, fmt.Errorf("can't count history: %w", err)
	}

	return int(count), nil
}

func (that *redisHistory) DeleteAll(ctx context.Context) error {
	if err := that.client.Del(ctx, historyKey).Err(); err != nil {
		return fmt.Errorf("can't delete history: %w", err)
	}

	return nil
}
