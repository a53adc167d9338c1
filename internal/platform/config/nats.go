package config

import (
	"fmt"
	"time"
)

type NATSConfig struct {
	Enabled        bool                 `koanf:"enabled"`
	Url            string               `koanf:"url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Stream         string               `koanf:"stream"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuitbreaker"`
}

type CircuitBreakerConfig struct {
	ConsecutiveFailures uint32        `koanf:"consecutivefailures"`
	OpenTimeout         time.Duration `koanf:"opentimeout"`
}

func (c *NATSConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Url == "" {
		return fmt.Errorf("NATS URL is not configured")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("nats dial timeout is not configured")
	}
	if c.Stream == "" {
		return fmt.Errorf("nats stream is not configured")
	}
	if c.CircuitBreaker.ConsecutiveFailures == 0 {
		return fmt.Errorf("nats.circuitbreaker.consecutivefailures must be greater than 0")
	}
	if c.CircuitBreaker.OpenTimeout <= 0 {
		return fmt.Errorf("nats.circuitbreaker.opentimeout must be greater than 0")
	}
	return nil
}
