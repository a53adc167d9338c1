package config

import (
	"fmt"
	"log/slog"
)

// LogConfig selects the minimum slog level. Empty means info.
type LogConfig struct {
	Level string `koanf:"level"`
}

func (c *LogConfig) Validate() error {
	if c.Level == "" {
		return nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Level)
	}
	return nil
}
