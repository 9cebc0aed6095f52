// Package config loads lazy sort session settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml"
	lazysort "github.com/scale-rs/lazysort-linear-mem"
	"github.com/scale-rs/lazysort-linear-mem/monitoring"
)

var ErrInvalidLevel = errors.New("config: invalid log level")

// Config is the root of the TOML document.
type Config struct {
	Sort SortConfig `toml:"sort"`
	Log  LogConfig  `toml:"log"`
}

// SortConfig selects the session options.
type SortConfig struct {
	Mode     string `toml:"mode"`     // log | linear | growable
	Capacity int    `toml:"capacity"` // 0 derives it from the input length
	Pivot    string `toml:"pivot"`    // median3 | ninther | last | random
	Seed     uint64 `toml:"seed"`     // 0 selects the default seed
}

type LogConfig struct {
	Level string `toml:"level"` // debug | info | warn | error
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Sort: SortConfig{
			Mode:  lazysort.CapacityLog.String(),
			Pivot: lazysort.PivotMedianOfThree.String(),
			Seed:  1,
		},
		Log: LogConfig{Level: "warn"},
	}
}

// Load decodes the file at path. Keys missing from the file take their values from Default.
func Load(path string) (cfg Config, err error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("config: closing %s: %w", path, cerr)
		}
	}()

	if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	cfg.fillDefaults()

	if _, err := cfg.Sort.Options(); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Log.LogLevel(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Sort.Mode == "" {
		c.Sort.Mode = def.Sort.Mode
	}
	if c.Sort.Pivot == "" {
		c.Sort.Pivot = def.Sort.Pivot
	}
	if c.Sort.Seed == 0 {
		c.Sort.Seed = def.Sort.Seed
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// Options translates the settings into session options.
func (c SortConfig) Options() ([]lazysort.Option, error) {
	mode, err := parseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	pivot, err := parsePivot(c.Pivot)
	if err != nil {
		return nil, err
	}
	if c.Capacity < 0 || c.Capacity == 1 {
		return nil, fmt.Errorf("config: %w: got %d", lazysort.ErrInvalidCapacity, c.Capacity)
	}

	opts := []lazysort.Option{
		lazysort.WithCapacityMode(mode),
		lazysort.WithPivot(pivot),
		lazysort.WithSeed(c.Seed),
	}
	if c.Capacity > 0 {
		opts = append(opts, lazysort.WithCapacity(c.Capacity))
	}
	return opts, nil
}

// LogLevel parses the configured level.
func (c LogConfig) LogLevel() (monitoring.LogLevel, error) {
	level, ok := monitoring.ParseLevel(c.Level)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, c.Level)
	}
	return level, nil
}

func parseMode(s string) (lazysort.CapacityMode, error) {
	for _, m := range []lazysort.CapacityMode{lazysort.CapacityLog, lazysort.CapacityLinear, lazysort.CapacityGrowable} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	if s == "" {
		return lazysort.CapacityLog, nil
	}
	return 0, fmt.Errorf("config: %w: %q", lazysort.ErrInvalidMode, s)
}

func parsePivot(s string) (lazysort.PivotRule, error) {
	for _, p := range []lazysort.PivotRule{lazysort.PivotMedianOfThree, lazysort.PivotNinther, lazysort.PivotLast, lazysort.PivotRandom} {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	if s == "" {
		return lazysort.PivotMedianOfThree, nil
	}
	return 0, fmt.Errorf("config: %w: %q", lazysort.ErrInvalidPivot, s)
}
