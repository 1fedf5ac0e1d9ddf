package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr      string
	PublicURL string

	CatalogBaseURL         string
	CatalogLimit           int
	CatalogTimeout         time.Duration
	CatalogRefreshSchedule string

	CartIdleTTL time.Duration

	PreferencesBackend string
	DatabaseURL        string
	RedisAddr          string
	RedisPass          string

	VisitorSecret string
	LogLevel      string
}

// Load reads configuration from environment variables. Call godotenv.Load
// before Load so a local .env file is honoured.
func Load() Config {
	return Config{
		Addr:      getenv("STOREFRONT_ADDR", ":8080"),
		PublicURL: strings.TrimRight(os.Getenv("PUBLIC_URL"), "/"),

		CatalogBaseURL:         strings.TrimRight(getenv("CATALOG_BASE_URL", "https://fakestoreapi.com"), "/"),
		CatalogLimit:           getenvInt("CATALOG_LIMIT", 6),
		CatalogTimeout:         getenvDuration("CATALOG_TIMEOUT", 8*time.Second),
		CatalogRefreshSchedule: getenv("CATALOG_REFRESH_SCHEDULE", "@every 15m"),

		CartIdleTTL: getenvDuration("CART_IDLE_TTL", 2*time.Hour),

		PreferencesBackend: strings.ToLower(getenv("PREFERENCES_BACKEND", "memory")),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPass:          os.Getenv("REDIS_PASS"),

		VisitorSecret: os.Getenv("VISITOR_SECRET"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
