package config

import (
	"fmt"
	"os"
	"strings"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errors []string

	// Required fields
	if c.Input == "" {
		errors = append(errors, "input file is required")
	} else {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("input file does not exist: %s", c.Input))
		}
	}

	// Validate interval
	if c.Interval <= 0 {
		errors = append(errors, "interval must be positive")
	}

	// Start and end selectors are each mutually exclusive groups
	if c.StartSelectorCount() > 1 {
		errors = append(errors, "start-time, start-chapter-number and start-chapter-name are mutually exclusive")
	}
	if c.EndSelectorCount() > 1 {
		errors = append(errors, "end-time, end-chapter-number and end-chapter-name are mutually exclusive")
	}

	// Chapter numbers are 1-based (0 means unset)
	if c.StartChapterNumber < 0 {
		errors = append(errors, "start chapter number cannot be negative")
	}
	if c.EndChapterNumber < 0 {
		errors = append(errors, "end chapter number cannot be negative")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}
