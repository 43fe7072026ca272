package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig      `toml:"app"`
	Auth     AuthConfig     `toml:"auth"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	RabbitMQ RabbitMQConfig `toml:"rabbitmq"`
	Storage  StorageConfig  `toml:"storage"`
	Log      LogConfig      `toml:"log"`
}

type AppConfig struct {
	Name    string `toml:"name"`
	Env     string `toml:"env"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	GinMode string `toml:"gin_mode"`
}

type AuthConfig struct {
	// JWTSecret is the shared secret of the hosted auth project. Empty means
	// token verification is unavailable and the service synthesizes a
	// development identity instead.
	JWTSecret string `toml:"jwt_secret"`
}

type DatabaseConfig struct {
	// URL is the anonymous-scoped DSN used for resource reads.
	URL string `toml:"url"`
	// ServiceURL is the privileged DSN used for query log inserts, which
	// bypass the row-level-security policies applied to the anonymous role.
	ServiceURL  string `toml:"service_url"`
	SearchLimit int    `toml:"search_limit"`
}

type RedisConfig struct {
	Addr             string `toml:"addr"`
	Password         string `toml:"password"`
	DB               int    `toml:"db"`
	SearchTTLSeconds int    `toml:"search_ttl_seconds"`
}

type RabbitMQConfig struct {
	URL           string `toml:"url"`
	QueryLogQueue string `toml:"query_log_queue"`
}

type StorageConfig struct {
	// PublicBaseURL is the public root of the bucket holding resource files.
	PublicBaseURL string `toml:"public_base_url"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Availability is the capability snapshot derived from configuration once at
// startup. Components receive it instead of re-reading the environment, so
// degraded ("mock") mode branches on a single source of truth.
type Availability struct {
	Database        bool
	ServiceDatabase bool
	Auth            bool
	Cache           bool
	Queue           bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func (c *Config) Production() bool {
	return c.App.Env == "production"
}

func (c *Config) Availability() Availability {
	return Availability{
		Database:        c.Database.URL != "",
		ServiceDatabase: c.Database.ServiceURL != "",
		Auth:            c.Auth.JWTSecret != "",
		Cache:           c.Redis.Addr != "",
		Queue:           c.RabbitMQ.URL != "",
	}
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "learn-with-jiji",
			Env:     "development",
			Host:    "0.0.0.0",
			Port:    3000,
			GinMode: "debug",
		},
		Database: DatabaseConfig{
			SearchLimit: 5,
		},
		Redis: RedisConfig{
			SearchTTLSeconds: 60,
		},
		RabbitMQ: RabbitMQConfig{
			QueryLogQueue: "jiji.query.log",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("PORT", cfg.App.Port)
	cfg.App.GinMode = getEnv("GIN_MODE", cfg.App.GinMode)

	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", cfg.Auth.JWTSecret)

	cfg.Database.URL = getEnv("DATABASE_URL", cfg.Database.URL)
	cfg.Database.ServiceURL = getEnv("DATABASE_SERVICE_URL", cfg.Database.ServiceURL)
	cfg.Database.SearchLimit = getEnvAsInt("SEARCH_LIMIT", cfg.Database.SearchLimit)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.SearchTTLSeconds = getEnvAsInt("REDIS_SEARCH_TTL_SECONDS", cfg.Redis.SearchTTLSeconds)

	cfg.RabbitMQ.URL = getEnv("RABBITMQ_URL", cfg.RabbitMQ.URL)
	cfg.RabbitMQ.QueryLogQueue = getEnv("RABBITMQ_QUERY_LOG_QUEUE", cfg.RabbitMQ.QueryLogQueue)

	cfg.Storage.PublicBaseURL = getEnv("STORAGE_PUBLIC_URL", cfg.Storage.PublicBaseURL)

	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
