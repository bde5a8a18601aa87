package netenv

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default construction parameters.
const (
	DefaultNumNodes      = 6
	DefaultMaxInterfaces = 4
	DefaultMaxCapacity   = 100.0
	DefaultMaxSteps      = 10
)

// Config holds the construction parameters of a NetworkEnv, loadable
// from a YAML file. A nil Seed means "derive a seed from the clock";
// a set Seed makes topology and demand generation fully reproducible.
type Config struct {
	NumNodes      int     `yaml:"num_nodes"`
	MaxInterfaces int     `yaml:"max_interfaces"`
	MaxCapacity   float64 `yaml:"max_capacity"` // applied uniformly to every generated link
	MaxSteps      int     `yaml:"max_steps"`
	Seed          *int64  `yaml:"seed"`
}

// DefaultConfig returns a Config populated with the default parameters
// and no seed.
func DefaultConfig() Config {
	return Config{
		NumNodes:      DefaultNumNodes,
		MaxInterfaces: DefaultMaxInterfaces,
		MaxCapacity:   DefaultMaxCapacity,
		MaxSteps:      DefaultMaxSteps,
	}
}

// Validate checks that all parameter ranges are usable and returns the
// first violation found.
func (c Config) Validate() error {
	if c.NumNodes <= 0 {
		return fmt.Errorf("num_nodes must be positive, got %d", c.NumNodes)
	}
	if c.MaxInterfaces <= 0 {
		return fmt.Errorf("max_interfaces must be positive, got %d", c.MaxInterfaces)
	}
	if c.MaxCapacity < 0 {
		return fmt.Errorf("max_capacity must be non-negative, got %v", c.MaxCapacity)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("max_steps must be positive, got %d", c.MaxSteps)
	}
	return nil
}

// LoadConfig reads and parses a YAML environment configuration file.
// Keys absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading env config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing env config: %w", err)
	}
	return cfg, nil
}
