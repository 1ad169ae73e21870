package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	APIKey   string         `json:"api_key,omitempty"`
	Search   SearchConfig   `json:"search"`
}

type HttpConfig struct {
	Port               string        `json:"port"`
	ReadTimeout        time.Duration `json:"read_timeout"`
	WriteTimeout       time.Duration `json:"write_timeout"`
	ShutdownTimeout    time.Duration `json:"shutdown_timeout"`
	CORSAllowedOrigins []string      `json:"cors_allowed_origins"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type SearchConfig struct {
	DefaultRadiusMeters float64       `json:"default_radius_meters"`
	CacheDisabled       bool          `json:"cache_disabled"`
	CacheTTL            time.Duration `json:"cache_ttl"`
	IndexEnabled        bool          `json:"index_enabled"`
	IndexRefresh        time.Duration `json:"index_refresh"`
	LogDisabled         bool          `json:"log_disabled"`
	LogQueueKey         string        `json:"log_queue_key"`
}

func Load() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:               getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:        getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:       getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout:    getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "equipmentcentral"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        int32(getEnvInt("POSTGRES_MAX_CONNS", 20)),
			MinConns:        int32(getEnvInt("POSTGRES_MIN_CONNS", 1)),
			MaxConnLifetime: getEnvDuration("POSTGRES_MAX_CONN_LIFETIME", time.Hour),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		APIKey: getEnv("API_KEY", ""),
		Search: SearchConfig{
			DefaultRadiusMeters: getEnvFloat("SEARCH_DEFAULT_RADIUS_M", 10000),
			CacheDisabled:       getEnvBool("SEARCH_CACHE_DISABLED", false),
			CacheTTL:            getEnvDuration("SEARCH_OPERATOR_CACHE_TTL", time.Minute),
			IndexEnabled:        getEnvBool("SEARCH_INDEX_ENABLED", false),
			IndexRefresh:        getEnvDuration("SEARCH_INDEX_REFRESH", 30*time.Second),
			LogDisabled:         getEnvBool("SEARCH_LOG_DISABLED", false),
			LogQueueKey:         getEnv("SEARCH_LOG_QUEUE_KEY", "search:events"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Float64("default_radius_m", cfg.Search.DefaultRadiusMeters),
		slog.Bool("index_enabled", cfg.Search.IndexEnabled))

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	if c.Search.DefaultRadiusMeters < 0 {
		return errors.New("SEARCH_DEFAULT_RADIUS_M must be >= 0")
	}

	if c.Search.IndexEnabled && c.Search.IndexRefresh <= 0 {
		return errors.New("SEARCH_INDEX_REFRESH must be positive when the index is enabled")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
