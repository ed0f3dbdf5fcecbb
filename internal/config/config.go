package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the relay. It is built once at startup and passed by
// value into the server and providers.
type Config struct {
	Port string `envconfig:"PORT" default:"5174"`
	// Deadline bounds a whole /scoreboard fetch. Zero leaves the fetch unbounded.
	Deadline Duration `envconfig:"SCOREBOARD_DEADLINE" default:"0s"`

	Tank01  Tank01Config
	ESPN    ESPNConfig
	TLS     TLSConfig
	Log     LogConfig
	Metrics MetricsConfig
}

// LogConfig selects logger level and output format.
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads configuration from environment variables with defaults and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Tank01.normalize()
	c.ESPN.normalize()
}

// PrimaryEnabled reports whether a primary provider credential is configured.
func (c Config) PrimaryEnabled() bool {
	return c.Tank01.APIKey != ""
}

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration
