package config

import (
	"fmt"
	"net"
)

// PProfConfig serves net/http/pprof on its own listener, separate from the REST API.
type PProfConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

func (c *PProfConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("pprof.addr must be host:port when pprof is enabled, got %q: %w", c.Addr, err)
	}
	return nil
}
