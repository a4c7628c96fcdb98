// Package config provides configuration loading and validation for the
// screener.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Config holds the service configuration. Values can come from a JSON
// file, environment variables, or defaults, in that order of precedence
// for the file and env.
type Config struct {
	Port           int    `json:"port,omitempty"`            // HTTP listen port
	DatabaseURL    string `json:"database_url,omitempty"`    // PostgreSQL connection URL
	VocabularyPath string `json:"vocabulary_path,omitempty"` // Path to the skill vocabulary CSV

	// Matching and scoring policy. Defaults match the documented
	// screening behavior; override with care since scores shift for
	// every candidate.
	FuzzyThreshold int     `json:"fuzzy_threshold,omitempty"` // 0-100 token-sort-ratio cutoff
	PenaltyPerYear float64 `json:"penalty_per_year,omitempty"`
	BonusPerYear   float64 `json:"bonus_per_year,omitempty"`
	BonusCap       float64 `json:"bonus_cap,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:           8080,
		VocabularyPath: "RoleSkills.csv",
		FuzzyThreshold: 80,
		PenaltyPerYear: 2,
		BonusPerYear:   1,
		BonusCap:       5,
	}
}

// Load reads configuration from a JSON file, applies environment
// variables on top of any fields the file leaves unset, and fills the
// rest from defaults. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.applyEnv()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		var file fileConfig
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
		file.overlay(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overrides defaults from environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("VOCABULARY_PATH"); v != "" {
		c.VocabularyPath = v
	}
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil && port != 0 {
		c.Port = port
	}
}

// fileConfig mirrors Config with pointer fields so an explicit zero in
// the file is distinguishable from an absent field. Policy knobs like
// penalty_per_year may legitimately be set to 0.
type fileConfig struct {
	Port           *int     `json:"port"`
	DatabaseURL    *string  `json:"database_url"`
	VocabularyPath *string  `json:"vocabulary_path"`
	FuzzyThreshold *int     `json:"fuzzy_threshold"`
	PenaltyPerYear *float64 `json:"penalty_per_year"`
	BonusPerYear   *float64 `json:"bonus_per_year"`
	BonusCap       *float64 `json:"bonus_cap"`
}

// overlay applies every field present in the file onto cfg. File values
// win over env and defaults.
func (f *fileConfig) overlay(c *Config) {
	if f.Port != nil {
		c.Port = *f.Port
	}
	if f.DatabaseURL != nil {
		c.DatabaseURL = *f.DatabaseURL
	}
	if f.VocabularyPath != nil {
		c.VocabularyPath = *f.VocabularyPath
	}
	if f.FuzzyThreshold != nil {
		c.FuzzyThreshold = *f.FuzzyThreshold
	}
	if f.PenaltyPerYear != nil {
		c.PenaltyPerYear = *f.PenaltyPerYear
	}
	if f.BonusPerYear != nil {
		c.BonusPerYear = *f.BonusPerYear
	}
	if f.BonusCap != nil {
		c.BonusCap = *f.BonusCap
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 100 {
		return fmt.Errorf("config error: fuzzy_threshold must be between 0 and 100")
	}
	if c.PenaltyPerYear < 0 {
		return fmt.Errorf("config error: penalty_per_year must be non-negative")
	}
	if c.BonusPerYear < 0 {
		return fmt.Errorf("config error: bonus_per_year must be non-negative")
	}
	if c.BonusCap < 0 {
		return fmt.Errorf("config error: bonus_cap must be non-negative")
	}
	return nil
}
