package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"

	"github.com/tychoish/order/ers"
)

// Config holds the parameters of one benchmark run. It is read from
// a TOML file and individual fields are overridden by flags.
type Config struct {
	Algorithm    string `toml:"algorithm"`
	Size         int    `toml:"size"`
	Seed         int64  `toml:"seed"`
	Distribution string `toml:"distribution"`
	Low          int    `toml:"low"`
	High         int    `toml:"high"`
	Descending   bool   `toml:"descending"`
	Repeat       int    `toml:"repeat"`
	// Depth is the fork depth of the parallel algorithms; a negative
	// value derives it from the number of logical cores.
	Depth int         `toml:"depth"`
	Range RangeConfig `toml:"range"`
}

// RangeConfig addresses the part of the input that is sorted. A zero
// Count sorts everything from Start to the end of the input.
type RangeConfig struct {
	Start int `toml:"start"`
	Count int `toml:"count"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Algorithm:    "merge",
		Size:         100000,
		Seed:         1,
		Distribution: "random",
		Low:          0,
		High:         1 << 20,
		Repeat:       1,
		Depth:        -1,
	}
}

// LoadConfig decodes the TOML file at path on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	if err = toml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return cfg, nil
}

// Count returns the number of items the run sorts.
func (c *Config) Count() int {
	if c.Range.Count == 0 {
		return c.Size - c.Range.Start
	}
	return c.Range.Count
}

// Validate checks the configuration against the registered algorithms
// and input generators.
func (c *Config) Validate() error {
	switch {
	case c.Size < 0:
		return fmt.Errorf("size %d is negative: %w", c.Size, ers.ErrMalformedConfiguration)
	case c.Repeat < 1:
		return fmt.Errorf("repeat %d must be at least one: %w", c.Repeat, ers.ErrMalformedConfiguration)
	case c.High <= c.Low:
		return fmt.Errorf("value bounds [%d, %d) are empty: %w", c.Low, c.High, ers.ErrMalformedConfiguration)
	case c.Range.Start < 0 || c.Range.Count < 0 || c.Range.Start > c.Size || c.Count() > c.Size-c.Range.Start:
		return fmt.Errorf("range %d+%d does not fit in %d items: %w", c.Range.Start, c.Range.Count, c.Size, ers.ErrMalformedConfiguration)
	}
	if _, ok := algorithms[c.Algorithm]; !ok {
		return fmt.Errorf("unknown algorithm %q: %w", c.Algorithm, ers.ErrMalformedConfiguration)
	}
	if _, ok := generators[c.Distribution]; !ok {
		return fmt.Errorf("unknown distribution %q: %w", c.Distribution, ers.ErrMalformedConfiguration)
	}
	return nil
}
