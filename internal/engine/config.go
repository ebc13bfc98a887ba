package engine

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultSize is the grid dimension used when none is configured.
	DefaultSize = 10
	// MaxSize bounds the grid dimension accepted by Validate.
	MaxSize = 64
	// DefaultFillProbability fills roughly one cell in five.
	DefaultFillProbability = 0.2
	// DefaultMaxAttempts bounds Randomize's rejection sampling.
	DefaultMaxAttempts = 10000
)

// Config controls the engine's grid dimension and random fill.
type Config struct {
	Size            int     `yaml:"size"`
	FillProbability float64 `yaml:"fillProbability"`
	MaxAttempts     int     `yaml:"maxAttempts"`
	// Seed drives the random fill; zero picks a time-based seed.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:            DefaultSize,
		FillProbability: DefaultFillProbability,
		MaxAttempts:     DefaultMaxAttempts,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overrides fields of c from a string map. Recognised keys are
// size, fill_probability, max_attempts and seed; unparseable or
// out-of-range values leave the field unchanged.
func ApplyMap(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= MaxSize {
			c.Size = parsed
		}
	}
	if v, ok := cfg["fill_probability"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && validProbability(parsed) {
			c.FillProbability = parsed
		}
	}
	if v, ok := cfg["max_attempts"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxAttempts = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// LoadConfig reads a YAML config file. Keys absent from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate reports whether the config can build an engine.
func (c Config) Validate() error {
	if c.Size < 1 || c.Size > MaxSize {
		return fmt.Errorf("%w: size %d outside [1, %d]", ErrInvalidConfig, c.Size, MaxSize)
	}
	if !validProbability(c.FillProbability) {
		return fmt.Errorf("%w: fill probability %v outside [0, 1]", ErrInvalidConfig, c.FillProbability)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts %d must be positive", ErrInvalidConfig, c.MaxAttempts)
	}
	return nil
}

func validProbability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}
