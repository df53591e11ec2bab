package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"folio.dev/internal/models"
	"folio.dev/internal/seed"
	"folio.dev/internal/storage"
)

// Config holds all application configuration
type Config struct {
	ServerAddr     string
	ProjectsFile   string
	StaticDir      string
	Projects       *models.ProjectList
	Settings       SettingsConfig
	SessionTTL     time.Duration
	SessionSweep   time.Duration
	SearchDebounce time.Duration
	CORSOrigins    []string
	LogLevel       string
	LogFormat      string
}

// SettingsConfig selects the visitor settings backend
type SettingsConfig struct {
	Backend string
	DSN     string
}

// Load reads .env (if present) and the environment, then loads the
// project catalog
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	projects, err := seed.Load(cfg.ProjectsFile)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	cfg.Projects = projects

	return cfg, nil
}

// FromEnv builds a Config from environment variables without loading
// the catalog
func FromEnv() (*Config, error) {
	sessionTTL, err := getEnvDuration("SESSION_TTL", 30*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("parse SESSION_TTL: %w", err)
	}

	sessionSweep, err := getEnvDuration("SESSION_SWEEP", 5*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("parse SESSION_SWEEP: %w", err)
	}

	debounce, err := getEnvDuration("SEARCH_DEBOUNCE", 300*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("parse SEARCH_DEBOUNCE: %w", err)
	}

	backend := getEnv("SETTINGS_BACKEND", storage.BackendMemory)
	dsn := getEnv("SETTINGS_DSN", "")
	if dsn == "" {
		switch backend {
		case storage.BackendSQLite:
			dsn = "data/settings.db"
		case storage.BackendRedis:
			dsn = getEnv("REDIS_URL", "redis://localhost:6379")
		}
	}

	cfg := &Config{
		ServerAddr:     getEnv("SERVER_ADDR", ":8080"),
		ProjectsFile:   getEnv("PROJECTS_FILE", ""),
		StaticDir:      getEnv("STATIC_DIR", "static"),
		Settings:       SettingsConfig{Backend: backend, DSN: dsn},
		SessionTTL:     sessionTTL,
		SessionSweep:   sessionSweep,
		SearchDebounce: debounce,
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Settings.Backend {
	case storage.BackendMemory, storage.BackendSQLite, storage.BackendRedis:
	default:
		return fmt.Errorf("SETTINGS_BACKEND must be memory, sqlite or redis, got %q", c.Settings.Backend)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.SessionSweep <= 0 {
		return fmt.Errorf("SESSION_SWEEP must be positive")
	}
	if c.SearchDebounce < 0 {
		return fmt.Errorf("SEARCH_DEBOUNCE must not be negative")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	return time.ParseDuration(v)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
