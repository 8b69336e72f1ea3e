package actionlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	attackrecord "github.com/KirkDiggler/buttonmen-rules/internal/entities/attack"
	dnderr "github.com/KirkDiggler/buttonmen-rules/internal/errors"
	"github.com/redis/go-redis/v9"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	// LogTTL expires a game's log after its last append; zero keeps it forever
	LogTTL time.Duration
}

// redisRepository implements Repository using one Redis list per game
type redisRepository struct {
	client redis.UniversalClient
	logTTL time.Duration
}

// NewRedisRepository creates a new Redis-backed action log
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	return &redisRepository{
		client: cfg.Client,
		logTTL: cfg.LogTTL,
	}
}

func logKey(gameID string) string {
	return fmt.Sprintf("game:%s:attacks", gameID)
}

// Append pushes the record onto the game's list
func (r *redisRepository) Append(ctx context.Context, record *attackrecord.Record) error {
	entry, err := NewEntry(record)
	if err != nil {
		return err
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return dnderr.Wrapf(err, "failed to encode entry %s", entry.ID)
	}

	// push and expiry go out as one transaction so a list never loses its TTL
	key := logKey(entry.GameID)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	if r.logTTL > 0 {
		pipe.Expire(ctx, key, r.logTTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.Wrapf(err, "failed to append attack %s", entry.ID)
	}

	return nil
}

// List reads the whole game list
func (r *redisRepository) List(ctx context.Context, gameID string) ([]Entry, error) {
	items, err := r.client.LRange(ctx, logKey(gameID), 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, dnderr.Wrapf(err, "failed to read action log of game %s", gameID)
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, dnderr.Wrapf(err, "failed to decode action log of game %s", gameID)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
