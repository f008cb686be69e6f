// Package config provides Viper-based configuration loading for the sheet CLI.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// EnvPrefix prefixes every environment override, e.g. SHEET_REDIS_ENDPOINT
const EnvPrefix = "SHEET"

// RedisConfig holds character store connection settings.
type RedisConfig struct {
	Endpoint   string `mapstructure:"endpoint"`
	PoolSize   int    `mapstructure:"pool_size"`
	MaxRetries int    `mapstructure:"max_retries"`
	UseTLS     bool   `mapstructure:"use_tls"`
}

// CatalogConfig selects the reference data.
type CatalogConfig struct {
	// Dir holds YAML catalog files. Empty means the embedded defaults.
	Dir string `mapstructure:"dir"`
}

// ExternalConfig holds dnd5e-api settings for the catalog importer.
type ExternalConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
	Concurrency int           `mapstructure:"concurrency"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "text".
	Format string `mapstructure:"format"`
}

// EventsConfig toggles the in-process event bus.
type EventsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Config is the top-level application configuration.
type Config struct {
	Redis    RedisConfig    `mapstructure:"redis"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	External ExternalConfig `mapstructure:"external"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Events   EventsConfig   `mapstructure:"events"`
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"json", "text"}
)

// Validate checks every section and reports all problems at once.
func (c Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("redis.endpoint", c.Redis.Endpoint, vb)
	if c.Redis.PoolSize < 0 {
		vb.Fieldf("redis.pool_size", "must be >= 0, got %d", c.Redis.PoolSize)
	}
	if c.Redis.MaxRetries < -1 {
		vb.Fieldf("redis.max_retries", "must be >= -1, got %d", c.Redis.MaxRetries)
	}

	if c.External.Timeout < 0 {
		vb.Field("external.timeout", "must not be negative")
	}
	if c.External.CacheTTL < 0 {
		vb.Field("external.cache_ttl", "must not be negative")
	}
	if c.External.Concurrency < 1 {
		vb.Fieldf("external.concurrency", "must be >= 1, got %d", c.External.Concurrency)
	}

	errors.ValidateOneOf("logging.level", c.Logging.Level, validLevels, vb)
	errors.ValidateOneOf("logging.format", c.Logging.Format, validFormats, vb)

	return vb.Build()
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result. An empty path skips the
// file and uses defaults plus environment.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "reading config file %s", path)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "unmarshalling config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("redis.endpoint", "localhost:6379")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.max_retries", 3)
	v.SetDefault("redis.use_tls", false)

	v.SetDefault("catalog.dir", "")

	v.SetDefault("external.base_url", "https://www.dnd5eapi.co/api/2014/")
	v.SetDefault("external.timeout", "30s")
	v.SetDefault("external.cache_ttl", "24h")
	v.SetDefault("external.concurrency", 8)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("events.enabled", true)
}
