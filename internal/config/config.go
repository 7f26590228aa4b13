package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Data sources the dashboard can read from
const (
	SourceMock     = "mock"
	SourcePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	Data       DataConfig
	Database   DatabaseConfig
	Migrations MigrationsConfig
	Redis      RedisConfig
	Locale     LocaleConfig
	Log        LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string
	Host string
}

// DataConfig selects the trade data provider
type DataConfig struct {
	Source string
	// TraderID is the trader shown on the landing page; empty means the first one
	TraderID string
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// MigrationsConfig holds schema migration settings
type MigrationsConfig struct {
	Path    string
	Enabled bool
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// LocaleConfig holds the default language and the zone publish times are written in
type LocaleConfig struct {
	Default  string
	Timezone string
}

// LogConfig holds logger settings
type LogConfig struct {
	Level       string
	Development bool
	// File receives logs from the terminal dashboard, which owns stdout
	File string
}

// Load reads configuration from environment variables, after loading a .env
// file from the working directory when one exists
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8081"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Data: DataConfig{
			Source:   strings.ToLower(getEnv("DATA_SOURCE", SourceMock)),
			TraderID: getEnv("DEFAULT_TRADER_ID", ""),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "postgres"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "trader"),
			Password: getEnv("DB_PASSWORD", "trader5"),
			DBName:   getEnv("DB_NAME", "trading_platform"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Migrations: MigrationsConfig{
			Path:    getEnv("MIGRATIONS_PATH", "./db/migrations"),
			Enabled: getEnvBool("MIGRATIONS_ENABLED", true),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("REDIS_TTL", 5*time.Minute),
		},
		Locale: LocaleConfig{
			Default:  getEnv("DEFAULT_LOCALE", "en"),
			Timezone: getEnv("SIGNAL_TIMEZONE", "Local"),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvBool("LOG_DEVELOPMENT", false),
			File:        getEnv("LOG_FILE", ""),
		},
	}
}

// Validate checks values that have a closed set of options
func (c *Config) Validate() error {
	switch c.Data.Source {
	case SourceMock, SourcePostgres:
	default:
		return fmt.Errorf("unknown DATA_SOURCE %q (want %s or %s)", c.Data.Source, SourceMock, SourcePostgres)
	}
	if _, err := c.Locale.Location(); err != nil {
		return err
	}
	if c.Redis.Enabled && c.Redis.TTL <= 0 {
		return fmt.Errorf("REDIS_TTL must be positive, got %s", c.Redis.TTL)
	}
	return nil
}

// ConnectionString returns the PostgreSQL connection string
func (d *DatabaseConfig) ConnectionString() string {
	return "postgres://" + d.User + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.DBName + "?sslmode=" + d.SSLMode
}

// Address returns the Redis address in host:port format
func (r *RedisConfig) Address() string {
	return r.Host + ":" + r.Port
}

// Location resolves the configured time zone of signal publish times
func (l *LocaleConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid SIGNAL_TIMEZONE %q: %w", l.Timezone, err)
	}
	return loc, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
