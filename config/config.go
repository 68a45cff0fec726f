// Package config loads schemacache settings from defaults, an optional
// config file, and SCHEMACACHE_* environment variables. Configuration is
// read once at construction time; there is no hot reload.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "SCHEMACACHE"

// Config holds the cache settings consumed by schemacache.New.
type Config struct {
	// CacheTTL is the time-to-live for schema, schema list, and field list
	// entries, measured from insertion.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`

	// ValidationTTL is the shorter time-to-live applied to validation
	// result entries, which are cheap to recompute and go stale quickly.
	ValidationTTL time.Duration `mapstructure:"validation_ttl"`

	// MaxCacheSize bounds the number of cached entries. Zero or less
	// disables caching.
	MaxCacheSize int `mapstructure:"max_cache_size"`

	// LogLevel is the logrus level used by the CLI and optional loggers.
	LogLevel string `mapstructure:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CacheTTL:      5 * time.Minute,
		ValidationTTL: time.Minute,
		MaxCacheSize:  100,
		LogLevel:      "info",
	}
}

// Load reads configuration from an optional schemacache.yaml in the given
// paths and from SCHEMACACHE_* environment variables, on top of defaults.
// A missing config file is not an error.
func Load(paths ...string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("cache_ttl", def.CacheTTL)
	v.SetDefault("validation_ttl", def.ValidationTTL)
	v.SetDefault("max_cache_size", def.MaxCacheSize)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("schemacache")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
