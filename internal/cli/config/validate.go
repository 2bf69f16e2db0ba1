package config

import (
	"fmt"
	"log/slog"
	"slices"
)

var outputs = []string{"text", "json", "table"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input is required (use - for stdin)")
	}
	if _, err := c.Modes(); err != nil {
		return fmt.Errorf("mode must be scalar, ranges or both: %w", err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if !slices.Contains(outputs, c.Output) {
		return fmt.Errorf("unknown output %q (want one of %v)", c.Output, outputs)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("bad log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
