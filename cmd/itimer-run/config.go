package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/procclock/itimer-go/pkg/itimer"
	"github.com/procclock/itimer-go/pkg/timeval"
)

// Config describes the timer to run.
type Config struct {
	// Clock selects the clock kind: wall, user_cpu or total_cpu.
	Clock string `yaml:"clock"`

	// IntervalSeconds is the reload period.
	IntervalSeconds float64 `yaml:"interval_seconds"`

	// ValueSeconds is the time until the first expiry.
	// Defaults to IntervalSeconds when zero.
	ValueSeconds float64 `yaml:"value_seconds"`

	// SpeedFactor is applied before starting; zero means leave at 1.0.
	SpeedFactor float64 `yaml:"speed_factor"`

	// Rescale optionally changes the speed factor while running.
	Rescale *RescaleConfig `yaml:"rescale"`
}

// RescaleConfig describes a live speed change.
type RescaleConfig struct {
	// AfterSeconds is how long after start to apply the new factor.
	AfterSeconds float64 `yaml:"after_seconds"`

	// Factor is the new speed factor.
	Factor float64 `yaml:"factor"`
}

// LoadConfig loads and validates a timer description from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.IntervalSeconds <= 0 {
		return nil, fmt.Errorf("interval_seconds must be positive, got %v", cfg.IntervalSeconds)
	}
	if cfg.ValueSeconds == 0 {
		cfg.ValueSeconds = cfg.IntervalSeconds
	}
	switch cfg.Clock {
	case "", "wall", "user_cpu", "total_cpu":
	default:
		return nil, fmt.Errorf("unknown clock %q (want wall, user_cpu or total_cpu)", cfg.Clock)
	}
	if cfg.Rescale != nil && cfg.Rescale.Factor <= 0 {
		return nil, fmt.Errorf("rescale.factor must be positive, got %v", cfg.Rescale.Factor)
	}

	return &cfg, nil
}

// Kind returns the configured clock kind, defaulting to Wall.
func (c *Config) Kind() itimer.Kind {
	switch c.Clock {
	case "user_cpu":
		return itimer.UserCPU
	case "total_cpu":
		return itimer.TotalCPU
	default:
		return itimer.Wall
	}
}

// Interval returns the reload period.
func (c *Config) Interval() timeval.Timeval {
	return timeval.FromSeconds(c.IntervalSeconds)
}

// Value returns the time until the first expiry.
func (c *Config) Value() timeval.Timeval {
	return timeval.FromSeconds(c.ValueSeconds)
}
