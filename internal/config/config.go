package config

import (
	"os"
	"strings"

	"github.com/shreywv2007/StudyFlow/internal/logger"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port          string
	DBPath        string
	LogMode       string
	CORSOrigins   []string
	RedisAddr     string
	RedisPassword string
}

// Load reads the environment. log may be nil; when set, fallbacks are reported at debug level.
func Load(log *logger.Logger) *Config {
	return &Config{
		Port:          getenv("PORT", "3001", log),
		DBPath:        getenv("DB_PATH", "planner.db", log),
		LogMode:       getenv("LOG_MODE", "dev", log),
		CORSOrigins:   splitList(getenv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000", log)),
		RedisAddr:     getenv("REDIS_ADDR", "", log),
		RedisPassword: getenv("REDIS_PASSWORD", "", log),
	}
}

// SessionsEnabled reports whether login sessions should be backed by Redis.
func (c *Config) SessionsEnabled() bool {
	return c.RedisAddr != ""
}

func getenv(key, fallback string, log *logger.Logger) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if log != nil {
		log.Debug("environment variable not set, using default", "env_var", key, "default", fallback)
	}
	return fallback
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
