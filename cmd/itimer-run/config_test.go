package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/procclock/itimer-go/pkg/itimer"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "itimer.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
clock: user_cpu
interval_seconds: 1.5
value_seconds: 3.0
speed_factor: 2.0
rescale:
  after_seconds: 5.0
  factor: 0.5
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Kind() != itimer.UserCPU {
		t.Errorf("Kind() = %v, want UserCPU", cfg.Kind())
	}
	if got := cfg.Interval().Seconds(); got != 1.5 {
		t.Errorf("Interval() = %vs, want 1.5", got)
	}
	if got := cfg.Value().Seconds(); got != 3.0 {
		t.Errorf("Value() = %vs, want 3.0", got)
	}
	if cfg.SpeedFactor != 2.0 {
		t.Errorf("SpeedFactor = %v, want 2.0", cfg.SpeedFactor)
	}
	if cfg.Rescale == nil || cfg.Rescale.Factor != 0.5 {
		t.Errorf("Rescale = %+v, want factor 0.5", cfg.Rescale)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "interval_seconds: 2.0\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Kind() != itimer.Wall {
		t.Errorf("Kind() = %v, want Wall default", cfg.Kind())
	}
	// value defaults to interval
	if got := cfg.Value().Seconds(); got != 2.0 {
		t.Errorf("Value() = %vs, want 2.0", got)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"MissingInterval", "clock: wall\n"},
		{"NegativeInterval", "interval_seconds: -1.0\n"},
		{"UnknownClock", "clock: lunar\ninterval_seconds: 1.0\n"},
		{"BadRescale", "interval_seconds: 1.0\nrescale:\n  factor: -2.0\n"},
		{"NotYAML", "{{{\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := LoadConfig(path); err == nil {
				t.Error("LoadConfig succeeded, want error")
			}
		})
	}
}
