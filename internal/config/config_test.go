package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

func validConfig() Config {
	return Config{
		Redis: RedisConfig{
			Endpoint:   "localhost:6379",
			PoolSize:   10,
			MaxRetries: 3,
		},
		External: ExternalConfig{
			BaseURL:     "https://www.dnd5eapi.co/api/2014/",
			Timeout:     30 * time.Second,
			CacheTTL:    24 * time.Hour,
			Concurrency: 8,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Events: EventsConfig{Enabled: true},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, validConfig(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.yaml")
	err := os.WriteFile(path, []byte(`
redis:
  endpoint: redis.internal:6380
  pool_size: 4
catalog:
  dir: /srv/catalog
external:
  timeout: 5s
  concurrency: 2
logging:
  level: debug
  format: json
events:
  enabled: false
`), 0o600)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "redis.internal:6380", cfg.Redis.Endpoint)
	assert.Equal(t, 4, cfg.Redis.PoolSize)
	assert.Equal(t, 3, cfg.Redis.MaxRetries)
	assert.Equal(t, "/srv/catalog", cfg.Catalog.Dir)
	assert.Equal(t, 5*time.Second, cfg.External.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.External.CacheTTL)
	assert.Equal(t, 2, cfg.External.Concurrency)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Events.Enabled)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SHEET_REDIS_ENDPOINT", "cache:6379")
	t.Setenv("SHEET_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "cache:6379", cfg.Redis.Endpoint)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: trace
external:
  concurrency: 0
`), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "external.concurrency")
}

func TestValidateLogging(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateRedisEndpoint(t *testing.T) {
	cfg := validConfig()
	cfg.Redis.Endpoint = " "
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis.endpoint")
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := validConfig()
	cfg.Redis.PoolSize = -1
	cfg.External.Timeout = -time.Second
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	for _, field := range []string{"redis.pool_size", "external.timeout", "logging.format"} {
		assert.Contains(t, err.Error(), field)
	}
}

// Property-based tests

func TestPropertyConcurrency(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(-100, 100).Draw(t, "concurrency")
		cfg := validConfig()
		cfg.External.Concurrency = n
		err := cfg.Validate()
		if n >= 1 && err != nil {
			t.Fatalf("valid concurrency %d rejected: %v", n, err)
		}
		if n < 1 && err == nil {
			t.Fatalf("invalid concurrency %d accepted", n)
		}
	})
}

func TestPropertyPoolSize(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		size := rapid.IntRange(0, 1000).Draw(t, "pool_size")
		cfg := validConfig()
		cfg.Redis.PoolSize = size
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid pool size %d rejected: %v", size, err)
		}
	})
}
