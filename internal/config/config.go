package config

import (
	"os"
	"time"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds runtime settings for the storefront CLI.
//
// RateLimit is in requests per second; zero disables throttling.
type Config struct {
	CatalogBaseURL string        `env:"STOREFRONT_CATALOG_BASE_URL"`
	RequestTimeout time.Duration `env:"STOREFRONT_REQUEST_TIMEOUT,strict"`
	RateLimit      float64       `env:"STOREFRONT_RATE_LIMIT,strict"`
	RateBurst      int           `env:"STOREFRONT_RATE_BURST,strict"`

	SessionBackend string `env:"STOREFRONT_SESSION_BACKEND"`
	DatabasePath   string `env:"STOREFRONT_DATABASE_PATH"`
	RedisAddr      string `env:"STOREFRONT_REDIS_ADDR"`
	SessionKey     string `env:"STOREFRONT_SESSION_KEY"`

	LogLevel    string `env:"STOREFRONT_LOG_LEVEL"`
	LogFormat   string `env:"STOREFRONT_LOG_FORMAT"`
	MetricsAddr string `env:"STOREFRONT_METRICS_ADDR"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.CatalogBaseURL = "https://dummyjson.com"
	c.RequestTimeout = 10 * time.Second
	c.RateLimit = 5
	c.RateBurst = 5
	c.SessionBackend = BackendSQLite
	c.DatabasePath = "storefront.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.SessionKey = "@catalogo:user"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.MetricsAddr = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays the
// environment, the config file and command-line flags. Later sources take
// precedence over earlier ones. Invalid input panics.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	args := os.Args[1:]
	parseEnv(cfg, ".env")
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
