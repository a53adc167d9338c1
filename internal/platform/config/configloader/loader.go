// Package configloader loads service configuration from config.yaml, .env and the process environment.
package configloader

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Validator interface {
	Validate() error
}

const (
	defaultConfigFile = "config.yaml"
	defaultEnvFile    = ".env"
)

// Load builds a T from, in increasing priority: config.yaml, .env and system environment variables
// prefixed with <SERVICENAME>_. Nested keys use "_" as separator, e.g. INVENTORY_DATABASE_URL -> database.url.
func Load[T Validator](serviceName string) (T, error) {
	return LoadFrom[T](serviceName, defaultConfigFile, defaultEnvFile)
}

// LoadFrom is Load with explicit config and .env file paths. Missing files are skipped,
// unreadable or malformed ones are reported.
func LoadFrom[T Validator](serviceName, configFile, envFile string) (T, error) {
	var cfg T
	k := koanf.New(".")
	keys := keyMapper(serviceName)

	sources := []struct {
		name string
		load func() error
	}{
		{configFile, func() error { return loadYAML(k, configFile) }},
		{envFile, func() error { return loadDotEnv(k, envFile, keys) }},
		{"environment", func() error { return k.Load(env.Provider(keys.prefix, ".", keys.toKey), nil) }},
	}
	for _, src := range sources {
		if err := src.load(); err != nil {
			return cfg, fmt.Errorf("loading %s: %w", src.name, err)
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

type envKeys struct {
	prefix string
}

func keyMapper(serviceName string) envKeys {
	return envKeys{prefix: strings.ToUpper(serviceName) + "_"}
}

// toKey maps INVENTORY_DATABASE_URL to database.url.
func (e envKeys) toKey(name string) string {
	name = strings.TrimPrefix(strings.ToUpper(name), e.prefix)
	return strings.ReplaceAll(strings.ToLower(name), "_", ".")
}

func loadYAML(k *koanf.Koanf, path string) error {
	err := k.Load(file.Provider(path), yaml.Parser())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func loadDotEnv(k *koanf.Koanf, path string, keys envKeys) error {
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	values := make(map[string]any, len(vars))
	for name, value := range vars {
		values[keys.toKey(name)] = value
	}
	return k.Load(confmap.Provider(values, "."), nil)
}
