// Package storage persists generated level snapshots to Redis.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"rogue/pkg/game/level"
)

// ErrNotFound is returned when no snapshot exists under the requested key.
var ErrNotFound = errors.New("level snapshot not found")

// SnapshotTTL is how long a saved level is kept.
const SnapshotTTL = 24 * time.Hour

const (
	levelPrefix = "level:"
	latestKey   = "level:latest"
)

// Saver stores a level snapshot.
type Saver interface {
	Save(ctx context.Context, lv *level.Level) error
}

// RedisStore keeps level snapshots as JSON under level:<id>, with
// level:latest naming the most recent one.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStore implements Saver
var _ Saver = (*RedisStore)(nil)

// NewRedisStore creates a store talking to the Redis server at addr.
func NewRedisStore(addr string, logger *slog.Logger) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisStore{
		client: rdb,
		logger: logger,
	}
}

// Ping checks the connection.
func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	return nil
}

// Save writes lv and points level:latest at it.
func (r *RedisStore) Save(ctx context.Context, lv *level.Level) error {
	data, err := json.Marshal(lv)
	if err != nil {
		r.logger.Error("Failed to marshal level", "uuid", lv.ID, "error", err)
		return fmt.Errorf("failed to marshal level: %w", err)
	}

	key := levelPrefix + lv.ID.String()
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, data, SnapshotTTL)
		pipe.Set(ctx, latestKey, lv.ID.String(), SnapshotTTL)
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to save level", "uuid", lv.ID, "error", err)
		return fmt.Errorf("failed to save level: %w", err)
	}

	r.logger.Debug("Level saved", "uuid", lv.ID, "level_number", lv.Number, "bytes", len(data))
	return nil
}

// Load reads the level saved under id.
func (r *RedisStore) Load(ctx context.Context, id uuid.UUID) (*level.Level, error) {
	data, err := r.client.Get(ctx, levelPrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("level %s: %w", id, ErrNotFound)
		}
		r.logger.Error("Failed to load level", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to load level: %w", err)
	}

	var lv level.Level
	if err := json.Unmarshal(data, &lv); err != nil {
		r.logger.Error("Failed to unmarshal level", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	return &lv, nil
}

// Latest reads the most recently saved level.
func (r *RedisStore) Latest(ctx context.Context) (*level.Level, error) {
	s, err := r.client.Get(ctx, latestKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to load latest level id", "error", err)
		return nil, fmt.Errorf("failed to load latest level id: %w", err)
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid latest level id %q: %w", s, err)
	}
	return r.Load(ctx, id)
}

// SaveAsync saves a copy of lv in the background. The copy is taken before
// SaveAsync returns, so the caller may mutate or regenerate lv right away.
// The returned channel yields the outcome once and is then closed.
func SaveAsync(ctx context.Context, s Saver, lv *level.Level, logger *slog.Logger) <-chan error {
	done := make(chan error, 1)
	if logger == nil {
		logger = slog.Default()
	}

	snapshot, err := lv.Clone()
	if err != nil {
		logger.Error("Failed to copy level for saving", "uuid", lv.ID, "error", err)
		done <- fmt.Errorf("failed to copy level: %w", err)
		close(done)
		return done
	}

	go func() {
		defer close(done)
		err := s.Save(ctx, snapshot)
		if err != nil {
			logger.Warn("Background level save failed", "uuid", snapshot.ID, "error", err)
		}
		done <- err
	}()
	return done
}
