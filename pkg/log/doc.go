// Package log provides structured event tracing for interval timers.
//
// This package defines the Logger interface and Event types for capturing
// timer-level events: state transitions, clock programmings, and errors.
// It is separate from operational logging (slog) - the trace provides a
// complete machine-readable record of every interaction with the underlying
// clock facility, for debugging and analysis.
//
// # Basic Usage
//
// Applications configure tracing by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.Trace = log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	cfg.Trace, _ = log.NewFileLogger("/var/log/itimer/wall.tlog")
//
//	// Both: use MultiLogger
//	cfg.Trace = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    log.NewFileLogger("/var/log/itimer/wall.tlog"),
//	)
//
// # Event Types
//
// Three event categories are captured:
//   - State: running/stopped transitions (StateChangeEvent)
//   - Clock: programmings and reads of the OS clock (ClockOpEvent)
//   - Error: failed operations, with the OS error code when one exists (ErrorEventData)
//
// Every event carries the timer's session ID (a UUID assigned at
// construction) and the clock kind name, so traces from several timers can
// be interleaved in one file and separated later.
//
// # File Format
//
// Trace files use CBOR encoding with .tlog extension. The Reader type
// provides streaming decode with optional filtering.
package log
