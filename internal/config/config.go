package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"catalog-backend/internal/infrastructure/database"
)

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App     AppConfig
	Store    StoreConfig
	Database database.DBConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Metrics MetricsConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// StoreConfig chọn persistence backend cho catalog
type StoreConfig struct {
	Driver string // postgres, memory
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

type MetricsConfig struct {
	Enabled bool
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Local Library"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Store: StoreConfig{
			Driver: getEnv("STORE_DRIVER", StoreDriverPostgres),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Cache: CacheConfig{
			Enabled: getEnvBool("CACHE_ENABLED", false),
			TTL:     ttl,
		},
		Metrics: MetricsConfig{
			Enabled: getEnvBool("METRICS_ENABLED", false),
		},
	}

	db, err := loadDatabaseConfig()
	if err != nil {
		return nil, err
	}
	cfg.Database = db

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	if c.App.Environment == "production" {
		if c.Store.Driver == StoreDriverMemory {
			return fmt.Errorf("STORE_DRIVER=memory is not allowed in production")
		}
		if c.Store.Driver == StoreDriverPostgres && c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}

	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when cache is enabled")
	}

	return nil
}

// loadDatabaseConfig đọc DB_* variables. Giá trị không parse được là lỗi,
// không âm thầm dùng default
func loadDatabaseConfig() (database.DBConfig, error) {
	db := database.DBConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Username: getEnv("DB_USER", "library"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "local_library"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	ints := []struct {
		key string
		def string
		set func(int)
	}{
		{"DB_PORT", "5432", func(v int) { db.Port = v }},
		{"DB_MAX_CONNECTIONS", "10", func(v int) { db.MaxConns = int32(v) }},
		{"DB_MIN_CONNECTIONS", "2", func(v int) { db.MinConns = int32(v) }},
		{"DB_MAX_RETRIES", "5", func(v int) { db.MaxRetries = v }},
	}
	for _, f := range ints {
		v, err := strconv.Atoi(getEnv(f.key, f.def))
		if err != nil {
			return db, fmt.Errorf("invalid %s: %w", f.key, err)
		}
		f.set(v)
	}

	durations := []struct {
		key string
		def string
		dst *time.Duration
	}{
		{"DB_MAX_CONN_LIFETIME", "5m", &db.MaxConnLifetime},
		{"DB_MAX_CONN_IDLE_TIME", "1m", &db.MaxConnIdleTime},
		{"DB_HEALTH_CHECK_PERIOD", "1m", &db.HealthCheckPeriod},
		{"DB_RETRY_DELAY", "1s", &db.RetryDelay},
		{"DB_CONNECT_TIMEOUT", "10s", &db.ConnectTimeout},
	}
	for _, f := range durations {
		v, err := time.ParseDuration(getEnv(f.key, f.def))
		if err != nil {
			return db, fmt.Errorf("invalid %s: %w", f.key, err)
		}
		*f.dst = v
	}

	return db, nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
