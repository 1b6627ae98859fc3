package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATASET_SEED", "")
	t.Setenv("EXPORT_CACHE_TTL_MINUTES", "")
	t.Setenv("CRON_ENABLED", "")

	env, err := Get()
	require.NoError(t, err)

	assert.Equal(t, 8080, env.PORT)
	assert.Equal(t, int64(42), env.DATASET_SEED)
	assert.Equal(t, 60*time.Minute, env.EXPORT_CACHE_TTL)
	assert.True(t, env.CRON_ENABLED)
}

func TestGetOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATASET_SEED", "1234")
	t.Setenv("EXPORT_CACHE_TTL_MINUTES", "5")
	t.Setenv("CRON_ENABLED", "false")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	env, err := Get()
	require.NoError(t, err)

	assert.Equal(t, 9090, env.PORT)
	assert.Equal(t, int64(1234), env.DATASET_SEED)
	assert.Equal(t, 5*time.Minute, env.EXPORT_CACHE_TTL)
	assert.False(t, env.CRON_ENABLED)
	assert.Equal(t, "redis://localhost:6379/0", env.REDIS_URL)
}

func TestGetIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("DATASET_SEED", "not-a-seed")
	t.Setenv("EXPORT_CACHE_TTL_MINUTES", "-10")

	env, err := Get()
	require.NoError(t, err)

	assert.Equal(t, 8080, env.PORT)
	assert.Equal(t, int64(42), env.DATASET_SEED)
	assert.Equal(t, 60*time.Minute, env.EXPORT_CACHE_TTL)
}
