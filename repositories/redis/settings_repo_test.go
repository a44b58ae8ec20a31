package redis

import (
	// Go Internal Packages
	"context"
	"testing"

	// External Packages
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestClient(t)
	repo := NewSettingsRepository(client)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, repo.Set(ctx, map[string]string{"theme": "dark", "memoEnabled": "false"}))
	assert.Equal(t, "dark", mr.HGet(settingsKey, "theme"))

	all, err = repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"theme": "dark", "memoEnabled": "false"}, all)

	require.NoError(t, repo.Delete(ctx, "theme", "selectedSite"))
	all, err = repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"memoEnabled": "false"}, all)
}
