package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// progress store
	StoreBackend      string `toml:"store_backend"`
	RedisHost         string `toml:"redis_host"`
	RedisPort         string `toml:"redis_port"`
	RedisPassword     string `toml:"-"`
	RedisKeyPrefix    string `toml:"redis_key_prefix"`
	MemoryStoreSizeMB int    `toml:"memory_store_size_mb"`

	// workout history
	HistoryEnabled   bool   `toml:"history_enabled"`
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresUser     string `toml:"postgres_user"`
	PostgresPassword string `toml:"-"`
	PostgresMaxConns int32  `toml:"postgres_max_conns"`

	// sessions and quests
	CatalogPath      string        `toml:"catalog_path"`
	TickInterval     time.Duration `toml:"tick_interval"`
	GetReadySeconds  int           `toml:"get_ready_seconds"`
	CountdownSeconds int           `toml:"countdown_seconds"`
	CameraAssisted   bool          `toml:"camera_assisted"`
	DailyQuests      int           `toml:"daily_quests"`
	WeeklyQuests     int           `toml:"weekly_quests"`
	FeedSize         int           `toml:"feed_size"`

	// api
	RateLimitAllowedPerMin int      `toml:"rate_limit_allowed_per_min"`
	AllowedOrigins         []string `toml:"allowed_origins"`
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

// Load reads the TOML file at path, picks the env section, applies defaults
// and env var overrides, and validates the result.
// Env overrides: GYMQUEST_REDIS_HOST, GYMQUEST_REDIS_PORT, GYMQUEST_REDIS_PASS,
// GYMQUEST_POSTGRES_HOST, GYMQUEST_PORT, GYMQUEST_STORE_BACKEND.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env [%s] missing", env)
	}

	cfg.ApplyDefaults()
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// ApplyDefaults fills every zero-valued tunable with its default.
func (c *Config) ApplyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.StoreBackend == "" {
		c.StoreBackend = StoreRedis
	}
	if c.MemoryStoreSizeMB <= 0 {
		c.MemoryStoreSizeMB = 8
	}
	if c.TickInterval <= 0 {
		c.TickInterval = time.Second
	}
	if c.GetReadySeconds <= 0 {
		c.GetReadySeconds = 10
	}
	if c.CountdownSeconds <= 0 {
		c.CountdownSeconds = 3
	}
	if c.DailyQuests <= 0 {
		c.DailyQuests = 3
	}
	if c.WeeklyQuests <= 0 {
		c.WeeklyQuests = 3
	}
	if c.RateLimitAllowedPerMin <= 0 {
		c.RateLimitAllowedPerMin = 120
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GYMQUEST_REDIS_HOST"); v != "" {
		c.RedisHost = v
	}
	if v := os.Getenv("GYMQUEST_REDIS_PORT"); v != "" {
		c.RedisPort = v
	}
	if v := os.Getenv("GYMQUEST_REDIS_PASS"); v != "" {
		c.RedisPassword = v
	}
	if v := os.Getenv("GYMQUEST_POSTGRES_HOST"); v != "" {
		c.PostgresHost = v
	}
	if v := os.Getenv("GYMQUEST_POSTGRES_USER"); v != "" {
		c.PostgresUser = v
	}
	if v := os.Getenv("GYMQUEST_POSTGRES_PASS"); v != "" {
		c.PostgresPassword = v
	}
	if v := os.Getenv("GYMQUEST_STORE_BACKEND"); v != "" {
		c.StoreBackend = v
	}
	if v := os.Getenv("GYMQUEST_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
}

func (c *Config) Validate() error {
	if c.Port <= 0 {
		return errors.New("port is required")
	}
	switch c.StoreBackend {
	case StoreRedis:
		if c.RedisHost == "" || c.RedisPort == "" {
			return errors.New("redis host and port are required for the redis store")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown store backend: %s", c.StoreBackend)
	}
	if c.HistoryEnabled && (c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "") {
		return errors.New("postgres host, port and db name are required when history is enabled")
	}
	return nil
}
