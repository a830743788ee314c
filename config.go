package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SearchConfig holds every knob of the evolutionary search. Zero-config
// runs use DefaultSearchConfig; a YAML file and CLI flags can override.
type SearchConfig struct {
	PopulationSize int `yaml:"population_size"`
	// MaxGenerations bounds the run; 0 means no bound (the search loops
	// until the success threshold is hit).
	MaxGenerations   int     `yaml:"max_generations"`
	TournamentSize   int     `yaml:"tournament_size"`
	SuccessThreshold float64 `yaml:"success_threshold"`
	InitDepth        int     `yaml:"init_depth"`
	MutationDepth    int     `yaml:"mutation_depth"`
}

// DefaultSearchConfig returns the base configuration.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		PopulationSize:   1000,
		MaxGenerations:   300,
		TournamentSize:   5,
		SuccessThreshold: 0.1,
		InitDepth:        2,
		MutationDepth:    mutationDepth,
	}
}

// Validate checks the configuration for values the search cannot run with.
func (c SearchConfig) Validate() error {
	if c.PopulationSize < 2 {
		return fmt.Errorf("population_size must be >= 2 (got %d)", c.PopulationSize)
	}
	if c.MaxGenerations < 0 {
		return fmt.Errorf("max_generations must be >= 0 (got %d)", c.MaxGenerations)
	}
	if c.TournamentSize < 1 {
		return fmt.Errorf("tournament_size must be >= 1 (got %d)", c.TournamentSize)
	}
	if c.SuccessThreshold <= 0 {
		return fmt.Errorf("success_threshold must be > 0 (got %g)", c.SuccessThreshold)
	}
	if c.InitDepth < 0 {
		return fmt.Errorf("init_depth must be >= 0 (got %d)", c.InitDepth)
	}
	if c.MutationDepth < 0 {
		return fmt.Errorf("mutation_depth must be >= 0 (got %d)", c.MutationDepth)
	}
	return nil
}

// LoadSearchConfig reads a YAML config file on top of the defaults.
func LoadSearchConfig(path string) (SearchConfig, error) {
	cfg := DefaultSearchConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
