package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by MergeFromEnv.
const (
	EnvInterval = "FRAMEGRAB_INTERVAL"
	EnvOutPath  = "FRAMEGRAB_OUTPATH"
)

// MergeFromEnv overrides config values from the environment.
//
// A .env file in the working directory is loaded first if present; real
// environment variables take precedence over it (godotenv never overwrites
// variables that are already set).
func (c *Config) MergeFromEnv() error {
	_ = godotenv.Load() // missing .env is fine

	if v := os.Getenv(EnvInterval); v != "" {
		interval, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvInterval, v, err)
		}
		c.Interval = interval
	}

	if v := os.Getenv(EnvOutPath); v != "" {
		c.OutPath = v
	}

	return nil
}
