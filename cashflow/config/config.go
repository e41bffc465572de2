package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the IRR solver parameters. These were previously hardcoded
// magic numbers inside the root search.
type Config struct {
	// ConvergenceTolerance is the NPV tolerance for declaring a root found.
	ConvergenceTolerance float64 `yaml:"convergence_tolerance"`

	// MaxIterations is the iteration cap for the root search.
	MaxIterations int `yaml:"max_iterations"`

	// BracketLow / BracketHigh bound the rate search interval. The low end
	// must stay above -1 to keep discount factors finite.
	BracketLow  float64 `yaml:"bracket_low"`
	BracketHigh float64 `yaml:"bracket_high"`

	// DerivativeThreshold is the minimum NPV derivative magnitude. Below
	// this, Newton steps are abandoned in favor of bisection.
	DerivativeThreshold float64 `yaml:"derivative_threshold"`

	// InitialGuess is the starting rate for the Newton phase.
	InitialGuess float64 `yaml:"initial_guess"`
}

// DefaultConfig provides production-ready default values.
var DefaultConfig = Config{
	ConvergenceTolerance: 1e-9,
	MaxIterations:        200,
	BracketLow:           -0.99,
	BracketHigh:          10.0,
	DerivativeThreshold:  1e-15,
	InitialGuess:         0.1,
}

// cfg is the active configuration. Defaults to DefaultConfig.
var cfg = DefaultConfig

// SetConfig replaces the active configuration.
func SetConfig(c Config) {
	cfg = c
}

// GetConfig returns the active configuration.
func GetConfig() Config {
	return cfg
}

// LoadFile reads a YAML solver configuration. Missing keys keep their
// default values.
func LoadFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config.LoadFile: %w", err)
	}
	c := DefaultConfig
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Config{}, fmt.Errorf("config.LoadFile: parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects parameter combinations the solver cannot run with.
func (c Config) Validate() error {
	if c.ConvergenceTolerance <= 0 {
		return fmt.Errorf("config: convergence_tolerance must be positive, got %g", c.ConvergenceTolerance)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("config: max_iterations must be positive, got %d", c.MaxIterations)
	}
	if c.BracketLow <= -1 {
		return fmt.Errorf("config: bracket_low must be > -1, got %g", c.BracketLow)
	}
	if c.BracketHigh <= c.BracketLow {
		return fmt.Errorf("config: bracket_high %g <= bracket_low %g", c.BracketHigh, c.BracketLow)
	}
	return nil
}
