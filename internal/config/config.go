package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds file-backed tunables. Everything has a sensible default so the
// YAML file is optional.
type Config struct {
	Listing ListingConfig `yaml:"listing"`
	Sweep   SweepConfig   `yaml:"sweep"`
	Catalog CatalogConfig `yaml:"catalog"`
}

type ListingConfig struct {
	PerPage int `yaml:"per_page"`
}

type SweepConfig struct {
	GraceMinutes int `yaml:"grace_minutes"`
}

type CatalogConfig struct {
	// File points at a YAML route catalog; empty means the built-in routes.
	File string `yaml:"file"`
}

func Default() Config {
	return Config{
		Listing: ListingConfig{PerPage: 12},
		Sweep:   SweepConfig{GraceMinutes: 10},
	}
}

// LoadConfig reads the YAML config at path, layering it over the defaults.
// An empty path returns the defaults untouched.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Listing.PerPage <= 0 {
		cfg.Listing.PerPage = 12
	}
	if cfg.Sweep.GraceMinutes <= 0 {
		cfg.Sweep.GraceMinutes = 10
	}
	return cfg, nil
}
