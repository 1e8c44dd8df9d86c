package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// EnvFile is the dotenv file read on first access. Missing files are ignored.
var EnvFile = ".env"

// Config returns the value of key from the environment, loading EnvFile first.
func Config(key string) string {
	loadOnce.Do(func() {
		_ = godotenv.Load(EnvFile)
	})
	return os.Getenv(key)
}

// Settings holds all configuration for the service
type Settings struct {
	Port        int
	Environment string
	LogLevel    string
	Seed        bool

	Database DatabaseConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver       string
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	Path         string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// Load reads Settings from the environment with defaults
func Load() (*Settings, error) {
	port, err := getInt("PORT", 8002)
	if err != nil {
		return nil, err
	}
	dbPort, err := getInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	maxOpen, err := getInt("DB_MAX_OPEN_CONNS", 25)
	if err != nil {
		return nil, err
	}
	maxIdle, err := getInt("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return nil, err
	}
	lifetime, err := getDuration("DB_MAX_LIFETIME", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	seed, err := getBool("DB_SEED", true)
	if err != nil {
		return nil, err
	}

	s := &Settings{
		Port:        port,
		Environment: getString("ENVIRONMENT", "development"),
		LogLevel:    getString("LOG_LEVEL", "info"),
		Seed:        seed,
		Database: DatabaseConfig{
			Driver:       getString("DB_DRIVER", "postgres"),
			Host:         getString("DB_HOST", "localhost"),
			Port:         dbPort,
			User:         getString("DB_USER", "postgres"),
			Password:     Config("DB_PASSWORD"),
			Name:         getString("DB_NAME", "movies"),
			SSLMode:      getString("DB_SSLMODE", "disable"),
			Path:         getString("DB_PATH", "movies.db"),
			MaxOpenConns: maxOpen,
			MaxIdleConns: maxIdle,
			MaxLifetime:  lifetime,
		},
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the settings for values the service cannot start with
func (s *Settings) Validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", s.Port)
	}
	switch s.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", s.Database.Driver)
	}
	return nil
}

// IsDevelopment reports whether the service runs in development mode
func (s *Settings) IsDevelopment() bool {
	return s.Environment == "" || s.Environment == "development"
}

// DSN returns the postgres connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func getString(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := Config(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := Config(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := Config(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}
