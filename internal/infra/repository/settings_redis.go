package repository

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/unicapital-scheduler/internal/domain/settings"
)

const webhooksKeyPrefix = "unicapital:webhooks:"

// SettingsRedisRepository guarda os webhooks de cada usuário num hash.
type SettingsRedisRepository struct {
	rdb redis.UniversalClient
}

func NewSettingsRedisRepository(rdb redis.UniversalClient) *SettingsRedisRepository {
	return &SettingsRedisRepository{rdb: rdb}
}

var _ settings.Repository = (*SettingsRedisRepository)(nil)

func webhooksKey(userID uint) string {
	return fmt.Sprintf("%s%d", webhooksKeyPrefix, userID)
}

func (r *SettingsRedisRepository) LoadWebhooks(ctx context.Context, userID uint) (settings.Webhooks, error) {
	m, err := r.rdb.HGetAll(ctx, webhooksKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall: %w", err)
	}
	return settings.Webhooks(m), nil
}

func (r *SettingsRedisRepository) SaveWebhooks(ctx context.Context, userID uint, w settings.Webhooks) error {
	if len(w) == 0 {
		return nil
	}

	values := make(map[string]any, len(w))
	for k, v := range w {
		values[k] = v
	}

	if err := r.rdb.HSet(ctx, webhooksKey(userID), values).Err(); err != nil {
		return fmt.Errorf("redis hset: %w", err)
	}
	return nil
}

// NewRedisClient abre o cliente a partir de uma URL redis://.
func NewRedisClient(ctx context.Context, rawURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}
