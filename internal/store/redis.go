package store

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/Eric-Mao06/Mailfish/internal/config"
	"github.com/Eric-Mao06/Mailfish/internal/logger"
)

const keyPrefix = "persona:"

type redisStore struct {
	client *redis.Client
}

// New connects to Redis and returns a Redis-backed Store. When Redis is not
// reachable at startup the process runs on the in-memory store instead:
// persistence across restarts is best-effort, not a guarantee.
func New(ctx context.Context, cfg config.RedisConfig, log logger.Logger) Store {
	if cfg.Addr == "" {
		log.Info(ctx, "No Redis configured, using in-memory persona store")
		return NewMemory()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Warn(ctx, "Redis not available, using in-memory persona store: %v", err)
		return NewMemory()
	}

	log.Info(ctx, "Redis connected, personas persist across restarts")
	return &redisStore{client: client}
}

func (s *redisStore) Save(ctx context.Context, rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+rec.Name, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, name string) (*Record, bool, error) {
	val, err := s.client.Get(ctx, keyPrefix+name).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var rec Record
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, false, fmt.Errorf("unmarshal record: %w", err)
	}
	return &rec, true, nil
}

func (s *redisStore) Count(ctx context.Context) (int, error) {
	var count int
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("redis scan: %w", err)
	}
	return count, nil
}
