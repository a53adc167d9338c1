package config

import (
	"fmt"
	"time"
)

const maxShutdownTimeout = 5 * time.Minute

// ShutdownConfig bounds how long each server and provider may take to stop after a signal.
type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

func (c *ShutdownConfig) Validate() error {
	if c.Timeout <= 0 || c.Timeout > maxShutdownTimeout {
		return fmt.Errorf("shutdown.timeout must be within (0, %s], got %s", maxShutdownTimeout, c.Timeout)
	}
	return nil
}
