package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// sessions
	SessionTTLMinutes             int `toml:"session_ttl_minutes"`
	SessionCleanupIntervalMinutes int `toml:"session_cleanup_interval_minutes"`
	// rate limits
	RecordsRateLimitPerMin int `toml:"records_rate_limit_per_min"`
	BMIRateLimitPerMin     int `toml:"bmi_rate_limit_per_min"`
	// response cache
	ResponseCacheSizeMB        int `toml:"response_cache_size_mb"`
	ResponseCacheExpireMinutes int `toml:"response_cache_expire_minutes"`

	AllowedOrigins []string `toml:"allowed_origins"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing in [%s]", env, path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid [%s] config: %w", env, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.RedisHost == "" || c.RedisPort == "" {
		errs = append(errs, errors.New("redis host and port must be set"))
	}
	if c.SessionTTLMinutes <= 0 {
		errs = append(errs, errors.New("session ttl must be positive"))
	}
	if c.SessionCleanupIntervalMinutes <= 0 {
		errs = append(errs, errors.New("session cleanup interval must be positive"))
	}
	if c.RecordsRateLimitPerMin <= 0 || c.BMIRateLimitPerMin <= 0 {
		errs = append(errs, errors.New("rate limits must be positive"))
	}
	if c.ResponseCacheSizeMB <= 0 {
		errs = append(errs, errors.New("response cache size must be positive"))
	}
	return multierr.Combine(errs...)
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

func (c *Config) SessionCleanupInterval() time.Duration {
	return time.Duration(c.SessionCleanupIntervalMinutes) * time.Minute
}

func (c *Config) ResponseCacheExpire() time.Duration {
	return time.Duration(c.ResponseCacheExpireMinutes) * time.Minute
}
