// Command itimer-run runs an interval timer from a YAML description and
// reports its expirations. Linux only.
//
// The tool demonstrates the split of responsibilities in this module: the
// timer core programs the kernel clock, while expiry notification is plain
// signal handling owned by the caller - here via os/signal.
//
// Usage:
//
//	itimer-run [flags]
//
// Flags:
//
//	-config  path to the YAML timer description (default itimer.yaml)
//	-run     how long to observe the timer (default 10s)
//	-trace   write a CBOR event trace to this file
//	-v       verbose output (debug level, includes trace events)
//
// Example configuration:
//
//	clock: wall            # wall | user_cpu | total_cpu
//	interval_seconds: 1.0  # reload period
//	value_seconds: 2.0     # first expiry, defaults to interval
//	speed_factor: 1.0      # optional, applied before start
//	rescale:               # optional live rescale while running
//	  after_seconds: 5.0
//	  factor: 2.0
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/procclock/itimer-go/pkg/itimer"
	tracelog "github.com/procclock/itimer-go/pkg/log"
)

func main() {
	configPath := flag.String("config", "itimer.yaml", "path to YAML timer description")
	runFor := flag.Duration("run", 10*time.Second, "how long to observe the timer")
	tracePath := flag.String("trace", "", "write a CBOR event trace to this file")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(*configPath, *runFor, *tracePath, logger); err != nil {
		fmt.Fprintf(os.Stderr, "itimer-run: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, runFor time.Duration, tracePath string, logger *slog.Logger) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	trace := tracelog.Logger(tracelog.NewSlogAdapter(logger))
	if tracePath != "" {
		fileTrace, err := tracelog.NewFileLogger(tracePath)
		if err != nil {
			return fmt.Errorf("opening trace file: %w", err)
		}
		defer fileTrace.Close()
		trace = tracelog.NewMultiLogger(trace, fileTrace)
	}

	tm, err := itimer.NewWithConfig(cfg.Kind(), cfg.Interval(), cfg.Value(), itimer.Config{
		Trace: trace,
	})
	if err != nil {
		return fmt.Errorf("creating %s timer: %w", cfg.Kind(), err)
	}
	defer tm.Close()

	if cfg.SpeedFactor != 0 {
		if err := tm.SetSpeedFactor(cfg.SpeedFactor); err != nil {
			return fmt.Errorf("setting speed factor: %w", err)
		}
	}

	// Expiry notification is the caller's job: the core never touches
	// signal handling.
	expiry := make(chan os.Signal, 16)
	signal.Notify(expiry, tm.Kind().Signal())
	defer signal.Stop(expiry)

	logger.Info("starting timer",
		"clock", tm.Kind().String(),
		"interval", cfg.Interval().String(),
		"value", cfg.Value().String(),
		"speed_factor", tm.SpeedFactor())

	if err := tm.Start(); err != nil {
		return fmt.Errorf("starting timer: %w", err)
	}
	started := time.Now()

	var rescaleAt <-chan time.Time
	if cfg.Rescale != nil {
		rescaleAt = time.After(time.Duration(cfg.Rescale.AfterSeconds * float64(time.Second)))
	}
	deadline := time.After(runFor)

	var count int
	for {
		select {
		case <-expiry:
			count++
			logger.Info("timer expired",
				"count", count,
				"elapsed", time.Since(started).Round(time.Millisecond))

		case <-rescaleAt:
			rescaleAt = nil
			if err := tm.SetSpeedFactor(cfg.Rescale.Factor); err != nil {
				return fmt.Errorf("rescaling timer: %w", err)
			}
			logger.Info("rescaled running timer", "speed_factor", cfg.Rescale.Factor)

		case <-deadline:
			if err := tm.Stop(); err != nil {
				return fmt.Errorf("stopping timer: %w", err)
			}
			remaining, err := tm.Value()
			if err != nil {
				return fmt.Errorf("reading timer value: %w", err)
			}
			logger.Info("timer stopped",
				"expirations", count,
				"observed", time.Since(started).Round(time.Millisecond),
				"remaining", remaining.String())
			return nil
		}
	}
}
