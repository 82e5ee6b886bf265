package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppPort   string
	AppEnv    string
	PublicDir string

	// DBDriver selects the store: "sqlite" (single file, default) or "postgres".
	DBDriver   string
	DBFile     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// SessionBackend selects the session store: "memory" (default) or "redis".
	SessionBackend string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	SessionTTL     time.Duration
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func Load() *Config {
	return &Config{
		AppPort:   get("APP_PORT", "3000"),
		AppEnv:    get("APP_ENV", "dev"),
		PublicDir: get("PUBLIC_DIR", "public"),

		DBDriver:   get("DB_DRIVER", "sqlite"),
		DBFile:     get("DB_FILE", "school.db"),
		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", "postgres"),
		DBName:     get("DB_NAME", "qayib"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),

		SessionBackend: get("SESSION_BACKEND", "memory"),
		RedisAddr:      get("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  get("REDIS_PASSWORD", ""),
		RedisDB:        getInt("REDIS_DB", 0),
		SessionTTL:     time.Duration(getInt("SESSION_TTL_HOURS", 24)) * time.Hour,
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
