// Package config loads runtime configuration for the storefront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A ".env" file in the working directory, then STOREFRONT_* environment
//     variables (see parseEnv). Variables already set win over the file.
//  3. Optional config file selected with -c or -config (see parseFile).
//     Files ending in .yaml or .yml are read as YAML, anything else as JSON.
//  4. Command-line flags (see parseFlags).
//
// Supported flags
//
//	-u string     catalog API base URL
//	-t duration   request timeout, e.g. 5s
//	-s string     session backend: sqlite, redis or memory
//	-d string     SQLite database path
//	-r string     Redis address
//	-l string     log level: debug, info, warn, error
//	-m string     address for the Prometheus endpoint; empty disables it
//
// # File schema
//
// Durations are either strings like "10s" or integer nanoseconds:
//
//	{
//	  "catalog_base_url": "https://dummyjson.com",
//	  "request_timeout": "10s",
//	  "rate_limit": 5,
//	  "rate_burst": 5,
//	  "session_backend": "sqlite",
//	  "database_path": "storefront.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "session_key": "@catalogo:user",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "metrics_addr": ""
//	}
package config
