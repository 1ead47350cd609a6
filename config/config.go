// Package config loads the service configuration from a JSON or YAML file
// with optional environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/campsched/campsched/core/metrics"
	"github.com/campsched/campsched/core/planner"
)

// envPrefix namespaces environment overrides, e.g.
// CAMPSCHED_API__LISTEN=:8080 sets api.listen.
const envPrefix = "CAMPSCHED_"

// Config is the whole service configuration.
type Config struct {
	Planner planner.Config `json:"planner"`
	Weeks   WeeksConfig    `json:"weeks"`
	Metrics metrics.Config `json:"metrics"`
	API     APIConfig      `json:"api"`
}

// APIConfig holds the HTTP surface settings.
type APIConfig struct {
	// Listen is the address of the planning API, e.g. ":8080".
	Listen string `json:"listen"`
}

// SetDefaults applies sane defaults.
func (c *APIConfig) SetDefaults() {
	if c.Listen == "" {
		c.Listen = ":8080"
	}
}

// Load reads the configuration file, applies environment overrides and
// validates the result. A missing file is an error; Default() serves the
// no-file case.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider(envPrefix, "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Weeks.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	c.Planner.SetDefaults()
	c.Weeks.SetDefaults()
	c.Metrics.SetDefaults()
	c.API.SetDefaults()
}
