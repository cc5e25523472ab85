package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/flagx"
	"github.com/dmitrijs2005/storefront/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for config file unmarshalling.
// Zero values mean "not set" and leave the runtime Config unchanged.
type FileConfig struct {
	CatalogBaseURL string         `json:"catalog_base_url" yaml:"catalog_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	RateLimit      float64        `json:"rate_limit" yaml:"rate_limit"`
	RateBurst      int            `json:"rate_burst" yaml:"rate_burst"`
	SessionBackend string         `json:"session_backend" yaml:"session_backend"`
	DatabasePath   string         `json:"database_path" yaml:"database_path"`
	RedisAddr      string         `json:"redis_addr" yaml:"redis_addr"`
	SessionKey     string         `json:"session_key" yaml:"session_key"`
	LogLevel       string         `json:"log_level" yaml:"log_level"`
	LogFormat      string         `json:"log_format" yaml:"log_format"`
	MetricsAddr    string         `json:"metrics_addr" yaml:"metrics_addr"`
}

// parseFile overlays cfg with the file named by -c / -config in args.
// Without such a flag nothing happens. Read or decode errors panic.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.CatalogBaseURL, fc.CatalogBaseURL)
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.RateLimit > 0 {
		cfg.RateLimit = fc.RateLimit
	}
	if fc.RateBurst > 0 {
		cfg.RateBurst = fc.RateBurst
	}
	setString(&cfg.SessionBackend, fc.SessionBackend)
	setString(&cfg.DatabasePath, fc.DatabasePath)
	setString(&cfg.RedisAddr, fc.RedisAddr)
	setString(&cfg.SessionKey, fc.SessionKey)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.MetricsAddr, fc.MetricsAddr)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
