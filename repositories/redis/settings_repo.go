package redis

import (
	// Go Internal Packages
	"context"

	// External Packages
	"github.com/redis/go-redis/v9"
)

const settingsKey = "terminal:settings"

// SettingsRepository keeps the terminal settings in a single hash.
type SettingsRepository struct {
	client *redis.Client
	key    string
}

func NewSettingsRepository(client *redis.Client) *SettingsRepository {
	return &SettingsRepository{client: client, key: settingsKey}
}

func (r *SettingsRepository) All(ctx context.Context) (map[string]string, error) {
	return r.client.HGetAll(ctx, r.key).Result()
}

func (r *SettingsRepository) Set(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	args := make([]interface{}, 0, len(values)*2)
	for k, v := range values {
		args = append(args, k, v)
	}
	return r.client.HSet(ctx, r.key, args...).Err()
}

func (r *SettingsRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.HDel(ctx, r.key, keys...).Err()
}
