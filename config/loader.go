package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadConfig loads configuration with priority:
// CLI flags > environment > config file > defaults
func LoadConfig() (*Config, error) {
	return loadConfig(os.Args[1:])
}

// loadConfig is the testable core of LoadConfig.
func loadConfig(args []string) (*Config, error) {
	// 1. Start with defaults
	cfg := DefaultConfig()

	// 2. Check if -config flag was provided (quick scan to extract it)
	configPath := ""
	for i, arg := range args {
		if arg == "-config" && i+1 < len(args) {
			configPath = args[i+1]
			break
		}
	}

	// If no config flag, try to find config file in standard locations
	if configPath == "" {
		configPath = FindConfigFile()
	}

	// Load config file if found
	if configPath != "" {
		fileCfg, err := LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg = fileCfg
	}

	// 3. Merge environment overrides
	if err := cfg.MergeFromEnv(); err != nil {
		return nil, err
	}

	// 4. Merge CLI flags (highest priority, overwrites everything)
	if err := cfg.MergeFromFlags(args); err != nil {
		return nil, err
	}

	// Derive the default output directory from the input file's location
	if cfg.OutPath == "" && cfg.Input != "" {
		cfg.OutPath = filepath.Join(filepath.Dir(cfg.Input), "screenshots")
	}

	// Validate final configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
