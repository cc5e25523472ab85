package config

import (
	"errors"
	"io/fs"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with STOREFRONT_* variables. dotenvPath, when it
// exists, is loaded into the process environment first without overriding
// variables that are already set. Unset variables leave fields untouched;
// numeric and duration fields are strict, so malformed values panic.
func parseEnv(cfg *Config, dotenvPath string) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		panic(err)
	}
}
