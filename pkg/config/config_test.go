package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets keys for the duration of the test so dotenv files can set them.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	keys := []string{"DISCORD_TOKEN", "ENVIRONMENT", "SHARD_COUNT", "LOG_LEVEL", "LOG_DIR"}

	t.Run("token from env file", func(t *testing.T) {
		clearEnv(t, keys...)
		path := writeEnvFile(t, "DISCORD_TOKEN=abc123\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "abc123", cfg.DiscordToken)
		assert.Equal(t, 1, cfg.ShardCount)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.True(t, cfg.IsDevelopment)
		assert.False(t, cfg.IsProduction)
		assert.Equal(t, "abc123", os.Getenv("DISCORD_TOKEN"))
	})

	t.Run("process environment wins over file", func(t *testing.T) {
		clearEnv(t, keys...)
		t.Setenv("DISCORD_TOKEN", "from-process")
		path := writeEnvFile(t, "DISCORD_TOKEN=from-file\nENVIRONMENT=production\nSHARD_COUNT=3\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from-process", cfg.DiscordToken)
		assert.Equal(t, 3, cfg.ShardCount)
		assert.True(t, cfg.IsProduction)
	})

	t.Run("missing env file", func(t *testing.T) {
		clearEnv(t, keys...)
		t.Setenv("DISCORD_TOKEN", "abc123")

		cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.env"))
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("missing token", func(t *testing.T) {
		clearEnv(t, keys...)
		path := writeEnvFile(t, "ENVIRONMENT=production\n")

		cfg, err := Load(path)
		assert.ErrorIs(t, err, ErrMissingToken)
		assert.Nil(t, cfg)
	})

	t.Run("invalid shard count", func(t *testing.T) {
		clearEnv(t, keys...)
		path := writeEnvFile(t, "DISCORD_TOKEN=abc123\nSHARD_COUNT=0\n")

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("non numeric shard count", func(t *testing.T) {
		clearEnv(t, keys...)
		path := writeEnvFile(t, "DISCORD_TOKEN=abc123\nSHARD_COUNT=many\n")

		_, err := Load(path)
		assert.Error(t, err)
	})
}
