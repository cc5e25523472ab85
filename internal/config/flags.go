package config

import (
	"flag"

	"github.com/dmitrijs2005/storefront/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-u string     catalog API base URL
//	-t duration   request timeout
//	-s string     session backend
//	-d string     SQLite database path
//	-r string     Redis address
//	-l string     log level
//	-m string     metrics listen address
//
// args is filtered with flagx.FilterArgs so flags owned by other
// components do not interfere.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-u", "-t", "-s", "-d", "-r", "-l", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.CatalogBaseURL, "u", cfg.CatalogBaseURL, "catalog API base URL")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.SessionBackend, "s", cfg.SessionBackend, "session backend (sqlite, redis, memory)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "SQLite database path")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
