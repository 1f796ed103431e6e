package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Reads values from the YAML file", func(t *testing.T) {
		// Given: a config file selecting the redis scoreboard
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `log-level: debug
console:
  no-color: true
scoreboard:
  backend: redis
  ttl: 30m
redis:
  host: cache
  port: "6380"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: every value comes from the file
		assert.Equal(t, "debug", conf.LogLevel)
		assert.True(t, conf.Console.NoColor)
		assert.Equal(t, ScoreboardRedis, conf.Scoreboard.Backend)
		assert.Equal(t, 30*time.Minute, conf.Scoreboard.TTL)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Missing keys fall back to defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: info\n"), 0o600))

		conf := MustLoad(path)

		assert.Equal(t, "info", conf.LogLevel)
		assert.False(t, conf.Console.NoColor)
		assert.Equal(t, ScoreboardMemory, conf.Scoreboard.Backend)
		assert.Equal(t, time.Hour, conf.Scoreboard.TTL)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: info\n"), 0o600))
		t.Setenv("LOG_LEVEL", "error")

		conf := MustLoad(path)

		assert.Equal(t, "error", conf.LogLevel)
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
		})
	})
}

func TestMustLoadEnv(t *testing.T) {
	// Given: only environment variables
	t.Setenv("SCOREBOARD_BACKEND", ScoreboardRedis)
	t.Setenv("REDIS_HOST", "cache")

	// When: the config is loaded
	conf := MustLoadEnv()

	// Then: environment values and defaults are combined
	assert.Equal(t, ScoreboardRedis, conf.Scoreboard.Backend)
	assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
	assert.Equal(t, "warn", conf.LogLevel)
}
