package main

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/docuri"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration file.
type Config struct {
	Archives    []string `yaml:"archives"`
	Prefix      string   `yaml:"prefix,omitempty"`
	JavaVersion string   `yaml:"java_version,omitempty"`
	Cache       string   `yaml:"cache,omitempty"`
}

// LoadConfig reads the configuration file at path. Relative archive and
// cache paths are resolved against the file's directory.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, docuri.Errorf(docuri.EINVALID, "cannot read config %s: %v", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, docuri.Errorf(docuri.EINVALID, "invalid YAML in %s: %v", path, err)
	}

	dir := filepath.Dir(path)
	for i, a := range cfg.Archives {
		cfg.Archives[i] = relativeTo(dir, a)
	}
	if cfg.Cache != "" && cfg.Cache != ":memory:" {
		cfg.Cache = relativeTo(dir, cfg.Cache)
	}
	return &cfg, nil
}

func relativeTo(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Apply merges cfg into the parsed flags. Flags and environment win over
// file values; file archives come first so flag archives shadow them.
func (c *CLI) Apply(cfg *Config) {
	c.Archives = append(append([]string(nil), cfg.Archives...), c.Archives...)
	if c.Prefix == "" {
		c.Prefix = cfg.Prefix
	}
	if c.JavaVersion == "" {
		c.JavaVersion = cfg.JavaVersion
	}
	if c.Cache == "" {
		c.Cache = cfg.Cache
	}
}
