package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	AppPort     string
	Environment string // "production" enables Secure session cookies

	DatabasePath  string
	MigrationsDir string

	RedisAddr     string
	RedisPassword string

	GeminiAPIKey string
	GeminiModel  string

	SessionTTL  time.Duration
	ChatTimeout time.Duration

	// Optional comma-separated override of the crisis phrase list.
	// Empty means the built-in defaults.
	CrisisKeywords []string
}

func Load() Config {

	cfg := Config{
		AppPort:     getenv("APP_PORT", "3000"),
		Environment: getenv("APP_ENV", "development"),

		DatabasePath:  getenv("DATABASE_PATH", "./alliswell.db"),
		MigrationsDir: getenv("MIGRATIONS_DIR", "./database/migrations"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getenv("GEMINI_MODEL", "gemini-1.5-flash-latest"),

		SessionTTL:  7 * 24 * time.Hour,
		ChatTimeout: 30 * time.Second,
	}

	if raw := os.Getenv("CRISIS_KEYWORDS"); raw != "" {
		for _, kw := range strings.Split(raw, ",") {
			kw = strings.TrimSpace(kw)
			if kw != "" {
				cfg.CrisisKeywords = append(cfg.CrisisKeywords, kw)
			}
		}
	}

	return cfg
}

func (c Config) Production() bool {
	return c.Environment == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
