// Package config loads the runtime knobs of the nnfs command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/nnfs/internal/search"
)

// Config captures the runtime knobs for a search run.
type Config struct {
	Dataset    string        `yaml:"dataset"`
	Samples    int           `yaml:"samples"`
	Classes    int           `yaml:"classes"`
	Hidden     int           `yaml:"hidden"`
	Magnitude  float64       `yaml:"magnitude"`
	Iterations int           `yaml:"iterations"`
	Budget     time.Duration `yaml:"budget"`
	Seed       int64         `yaml:"seed"`
	Workers    int           `yaml:"workers"`
	LogEvery   int           `yaml:"log_every"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	Dataset    string
	Samples    int
	Classes    int
	Hidden     int
	Magnitude  float64
	Iterations int
	Budget     time.Duration
	Seed       int64
	Workers    int
	LogEvery   int
}

// Default returns the configuration used when no file is given: 3 classes
// of 100 vertical-stripe points searched for 1000 iterations.
func Default() *Config {
	return &Config{
		Dataset:    "vertical",
		Samples:    100,
		Classes:    3,
		Hidden:     search.DefaultHidden,
		Magnitude:  search.DefaultMagnitude,
		Iterations: search.DefaultIterations,
		LogEvery:   100,
	}
}

// Load reads and validates a Config from a YAML file.
//
// Keys missing from the file keep their Default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML from r on top of Default. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates c using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Dataset != "" {
		c.Dataset = o.Dataset
	}
	if o.Samples > 0 {
		c.Samples = o.Samples
	}
	if o.Classes > 0 {
		c.Classes = o.Classes
	}
	if o.Hidden > 0 {
		c.Hidden = o.Hidden
	}
	if o.Magnitude > 0 {
		c.Magnitude = o.Magnitude
	}
	if o.Iterations > 0 {
		c.Iterations = o.Iterations
	}
	if o.Budget > 0 {
		c.Budget = o.Budget
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Workers > 0 {
		c.Workers = o.Workers
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	switch strings.ToLower(c.Dataset) {
	case "spiral", "vertical":
	default:
		return fmt.Errorf("dataset must be spiral or vertical (got %q)", c.Dataset)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be > 0 (got %d)", c.Samples)
	}
	if c.Classes <= 0 {
		return fmt.Errorf("classes must be > 0 (got %d)", c.Classes)
	}
	if c.Hidden <= 0 {
		return fmt.Errorf("hidden must be > 0 (got %d)", c.Hidden)
	}
	if c.Magnitude <= 0 {
		return fmt.Errorf("magnitude must be > 0 (got %v)", c.Magnitude)
	}
	if c.Iterations < 0 || c.Budget < 0 {
		return errors.New("iterations and budget must not be negative")
	}
	if c.Iterations == 0 && c.Budget == 0 {
		return errors.New("one of iterations or budget must be set")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative (got %d)", c.Workers)
	}
	if c.LogEvery < 0 {
		c.LogEvery = 0
	}
	return nil
}

// SearchConfig converts c into a search configuration for inputs-wide samples.
func (c *Config) SearchConfig(inputs int) search.Config {
	return search.Config{
		Inputs:     inputs,
		Hidden:     c.Hidden,
		Classes:    c.Classes,
		Magnitude:  c.Magnitude,
		Iterations: c.Iterations,
		Budget:     c.Budget,
		Seed:       c.Seed,
		Workers:    c.Workers,
		LogEvery:   c.LogEvery,
	}
}
