package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSearchConfigValid(t *testing.T) {
	if err := DefaultSearchConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SearchConfig)
		ok     bool
	}{
		{"pop too small", func(c *SearchConfig) { c.PopulationSize = 1 }, false},
		{"negative budget", func(c *SearchConfig) { c.MaxGenerations = -1 }, false},
		{"unbounded budget", func(c *SearchConfig) { c.MaxGenerations = 0 }, true},
		{"zero tournament", func(c *SearchConfig) { c.TournamentSize = 0 }, false},
		{"zero threshold", func(c *SearchConfig) { c.SuccessThreshold = 0 }, false},
		{"negative init depth", func(c *SearchConfig) { c.InitDepth = -1 }, false},
		{"zero depths", func(c *SearchConfig) { c.InitDepth = 0; c.MutationDepth = 0 }, true},
	}

	for _, c := range cases {
		cfg := DefaultSearchConfig()
		c.mutate(&cfg)
		err := cfg.Validate()
		if c.ok && err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
		}
		if !c.ok && err == nil {
			t.Errorf("%s: accepted", c.name)
		}
	}
}

func TestLoadSearchConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	os.WriteFile(path, []byte("population_size: 250\nsuccess_threshold: 0.05\n"), 0o644)

	cfg, err := LoadSearchConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PopulationSize != 250 {
		t.Errorf("population_size = %d", cfg.PopulationSize)
	}
	if cfg.SuccessThreshold != 0.05 {
		t.Errorf("success_threshold = %g", cfg.SuccessThreshold)
	}
	// Untouched knobs keep their defaults.
	if cfg.TournamentSize != DefaultSearchConfig().TournamentSize {
		t.Errorf("tournament_size = %d", cfg.TournamentSize)
	}
}

func TestLoadSearchConfigRejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("population_size: 1\n"), 0o644)
	if _, err := LoadSearchConfig(bad); err == nil {
		t.Error("population_size 1 accepted")
	}

	notYAML := filepath.Join(dir, "not.yaml")
	os.WriteFile(notYAML, []byte("{{{{"), 0o644)
	if _, err := LoadSearchConfig(notYAML); err == nil {
		t.Error("malformed YAML accepted")
	}

	if _, err := LoadSearchConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}
