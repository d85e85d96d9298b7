package itimer

import (
	"errors"
	"log/slog"
	"math"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	tracelog "github.com/procclock/itimer-go/pkg/log"
	"github.com/procclock/itimer-go/pkg/timeval"
)

// exitSoftware is the exit code used when a timer cannot be stopped during
// Close (EX_SOFTWARE from sysexits).
const exitSoftware = 70

// Timer is an interval timer bound to one clock kind.
//
// While stopped, the normalized interval and value held by the Timer are
// authoritative. While running, the kernel's countdown (in live, speed-scaled
// form) is authoritative; the stored value is refreshed only when the timer
// is queried or stopped.
//
// Create timers with New and its variants; a Timer must be released with
// Close before another one of the same kind can be created.
type Timer struct {
	mu sync.Mutex

	kind     Kind
	clock    Clock
	registry *Registry
	trace    tracelog.Logger

	// sessionID correlates trace events from this instance.
	sessionID string

	// Normalized (speed factor 1.0) interval and value.
	// value is stale while running.
	interval timeval.Timeval
	value    timeval.Timeval

	speedFactor float64
	running     bool
	closed      bool
}

// Config carries optional collaborators for a Timer.
// The zero value selects the system clock, the process-wide registry and no
// tracing.
type Config struct {
	// Clock programs the OS countdown facility. Defaults to SystemClock.
	Clock Clock

	// Registry enforces the one-timer-per-kind invariant.
	// Defaults to the process-wide registry.
	Registry *Registry

	// Trace receives timer trace events. Defaults to no tracing.
	Trace tracelog.Logger
}

// New creates a stopped timer whose initial value equals the interval.
func New(kind Kind, interval timeval.Timeval) (*Timer, error) {
	return NewWithConfig(kind, interval, interval, Config{})
}

// NewWithValue creates a stopped timer with an explicit initial value.
// The value may exceed the interval, making the first expiry take longer
// than subsequent ones.
func NewWithValue(kind Kind, interval, value timeval.Timeval) (*Timer, error) {
	return NewWithConfig(kind, interval, value, Config{})
}

// NewSeconds creates a stopped timer from a float64 seconds interval.
func NewSeconds(kind Kind, interval float64) (*Timer, error) {
	tv := timeval.FromSeconds(interval)
	return NewWithConfig(kind, tv, tv, Config{})
}

// NewSecondsWithValue creates a stopped timer from float64 seconds values.
func NewSecondsWithValue(kind Kind, interval, value float64) (*Timer, error) {
	return NewWithConfig(kind, timeval.FromSeconds(interval), timeval.FromSeconds(value), Config{})
}

// NewWithConfig creates a stopped timer with explicit collaborators.
// Fails with ErrAlreadyExists if a live timer of the same kind is already
// registered.
func NewWithConfig(kind Kind, interval, value timeval.Timeval, cfg Config) (*Timer, error) {
	if !kind.valid() {
		return nil, ErrUnknownKind
	}

	clock := cfg.Clock
	if clock == nil {
		clock = defaultClock
	}
	registry := cfg.Registry
	if registry == nil {
		registry = processRegistry
	}
	trace := cfg.Trace
	if trace == nil {
		trace = tracelog.NoopLogger{}
	}

	if err := registry.acquire(kind); err != nil {
		return nil, err
	}

	return &Timer{
		kind:        kind,
		clock:       clock,
		registry:    registry,
		trace:       trace,
		sessionID:   uuid.NewString(),
		interval:    interval,
		value:       value,
		speedFactor: 1.0,
	}, nil
}

// Kind returns the clock kind this timer observes.
func (t *Timer) Kind() Kind {
	return t.kind
}

// SessionID returns the UUID identifying this instance in trace events.
func (t *Timer) SessionID() string {
	return t.sessionID
}

// Running reports whether the timer is counting down.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// SpeedFactor returns the current speed factor.
func (t *Timer) SpeedFactor() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.speedFactor
}

// Interval returns the normalized interval.
func (t *Timer) Interval() timeval.Timeval {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interval
}

// Start programs the OS clock with the speed-scaled interval and value and
// begins the countdown.
//
// Fails with ErrAlreadyStarted if running, ErrDegenerateInterval if the
// speed factor collapsed the interval to zero, and with a ClockError if the
// facility rejects the programming, in which case the timer stays stopped.
func (t *Timer) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	if t.running {
		return ErrAlreadyStarted
	}

	scaled := Setting{
		Interval: t.interval.Div(t.speedFactor),
		Value:    t.value.Div(t.speedFactor),
	}

	if scaled.Interval.Negative() {
		return ErrNegativeInterval
	}
	if scaled.Value.Negative() {
		return ErrNegativeValue
	}
	if scaled.Interval.IsZero() {
		return ErrDegenerateInterval
	}

	if _, err := t.clock.Program(t.kind, scaled); err != nil {
		err = clockError("setitimer", t.kind, err)
		t.emitError(err, "start")
		return err
	}

	t.running = true
	t.emitClockOp("program", scaled)
	t.emitState("STOPPED", "RUNNING", "start")
	return nil
}

// Stop disarms the OS clock, capturing its remaining value in the same
// syscall, and stores the value back in normalized form.
//
// Fails with ErrAlreadyStopped if not running. On a ClockError the timer is
// left in the running state, but the clock may or may not actually have been
// disarmed; callers that continue after such a failure must re-check.
func (t *Timer) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopLocked("stop")
}

func (t *Timer) stopLocked(reason string) error {
	if !t.running {
		return ErrAlreadyStopped
	}

	// Program the zero setting: disarms the clock and returns what was
	// left on it, atomically.
	prev, err := t.clock.Program(t.kind, Setting{})
	if err != nil {
		err = clockError("setitimer", t.kind, err)
		t.emitError(err, reason)
		return err
	}

	// Back to normalized form with the factor the live value ran at.
	t.value = prev.Value.Scale(t.speedFactor)
	t.running = false

	t.emitClockOp("disarm", prev)
	t.emitState("RUNNING", "STOPPED", reason)
	return nil
}

// SetSpeedFactor sets the speed factor. Factors above 1.0 speed the timer
// up, factors in ]0,1[ slow it down.
//
// Applied immediately: if the timer is running, the live countdown is
// captured, rescaled by the ratio of old to new factor and reprogrammed in
// one sequence. On a ClockError during that sequence the factor is left
// unchanged and the actual clock state is indeterminate.
func (t *Timer) SetSpeedFactor(factor float64) error {
	if factor <= 0.0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return ErrInvalidSpeedFactor
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	if !t.running {
		t.speedFactor = factor
		return nil
	}
	return t.adjustSpeedLocked(factor)
}

// SetSpeedToNormal resets the speed factor to 1.0, like
// SetSpeedFactor(1.0).
func (t *Timer) SetSpeedToNormal() error {
	return t.SetSpeedFactor(1.0)
}

// adjustSpeedLocked rescales a running timer to a new speed factor.
//
// The captured live value is rescaled directly by oldFactor/newFactor
// rather than round-tripping through the normalized form; across many rapid
// speed changes that keeps rounding error from compounding.
func (t *Timer) adjustSpeedLocked(newFactor float64) error {
	prev, err := t.clock.Program(t.kind, Setting{})
	if err != nil {
		err = clockError("setitimer", t.kind, err)
		t.emitError(err, "adjust_speed")
		return err
	}

	next := Setting{
		Interval: t.interval.Div(newFactor),
		Value:    prev.Value.Scale(t.speedFactor / newFactor),
	}

	if _, err := t.clock.Program(t.kind, next); err != nil {
		err = clockError("setitimer", t.kind, err)
		t.emitError(err, "adjust_speed")
		return err
	}

	t.speedFactor = newFactor
	t.emitClockOp("program", next)
	return nil
}

// SetInterval sets the normalized interval and resets the value to it.
// Only allowed while stopped; fails with ErrTimerRunning otherwise.
func (t *Timer) SetInterval(interval timeval.Timeval) error {
	return t.SetIntervalValue(interval, interval)
}

// SetIntervalSeconds is SetInterval with a float64 seconds interval.
func (t *Timer) SetIntervalSeconds(interval float64) error {
	tv := timeval.FromSeconds(interval)
	return t.SetIntervalValue(tv, tv)
}

// SetIntervalValue sets the normalized interval and value.
// Only allowed while stopped; fails with ErrTimerRunning otherwise.
// The value may exceed the interval.
func (t *Timer) SetIntervalValue(interval, value timeval.Timeval) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	if t.running {
		return ErrTimerRunning
	}

	t.interval = interval
	t.value = value
	return nil
}

// SetIntervalValueSeconds is SetIntervalValue with float64 seconds values.
func (t *Timer) SetIntervalValueSeconds(interval, value float64) error {
	return t.SetIntervalValue(timeval.FromSeconds(interval), timeval.FromSeconds(value))
}

// Value returns the normalized remaining time until the next expiry.
//
// While stopped, this is the stored value. While running, the live clock is
// read non-destructively and un-scaled by the current speed factor; that
// read can fail with a ClockError. Value never mutates the timer.
func (t *Timer) Value() (timeval.Timeval, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return t.value, nil
	}

	cur, err := t.clock.Read(t.kind)
	if err != nil {
		err = clockError("getitimer", t.kind, err)
		t.emitError(err, "value")
		return timeval.Timeval{}, err
	}
	return cur.Value.Scale(t.speedFactor), nil
}

// ValueSeconds returns Value as float64 seconds.
func (t *Timer) ValueSeconds() (float64, error) {
	v, err := t.Value()
	if err != nil {
		return 0, err
	}
	return v.Seconds(), nil
}

// Close releases the timer. If running it is stopped first; the clock-kind
// slot is freed so a new timer of this kind can be created. Close is
// idempotent.
//
// If the stop attempt itself fails the process is terminated: a timer whose
// clock may still be live and about to fire cannot be safely dropped.
func (t *Timer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}

	if t.running {
		if err := t.stopLocked("close"); err != nil {
			t.emitError(err, "close")
			slog.Error("cannot stop timer during close, terminating",
				"clock", t.kind.String(),
				"session_id", t.sessionID,
				"err", err)
			os.Exit(exitSoftware)
		}
	}

	t.closed = true
	t.registry.release(t.kind)
	return nil
}

// emitState records a state transition trace event.
func (t *Timer) emitState(oldState, newState, reason string) {
	t.trace.Log(tracelog.Event{
		Timestamp: time.Now(),
		SessionID: t.sessionID,
		Clock:     t.kind.String(),
		Category:  tracelog.CategoryState,
		StateChange: &tracelog.StateChangeEvent{
			OldState: oldState,
			NewState: newState,
			Reason:   reason,
		},
	})
}

// emitClockOp records a clock programming trace event.
func (t *Timer) emitClockOp(op string, s Setting) {
	t.trace.Log(tracelog.Event{
		Timestamp: time.Now(),
		SessionID: t.sessionID,
		Clock:     t.kind.String(),
		Category:  tracelog.CategoryClock,
		ClockOp: &tracelog.ClockOpEvent{
			Op:           op,
			IntervalUsec: s.Interval.Duration().Microseconds(),
			ValueUsec:    s.Value.Duration().Microseconds(),
			SpeedFactor:  t.speedFactor,
		},
	})
}

// emitError records an error trace event, extracting the OS error code
// when the failure came from the clock facility.
func (t *Timer) emitError(err error, context string) {
	data := &tracelog.ErrorEventData{
		Message: err.Error(),
		Context: context,
	}

	var ce *ClockError
	if errors.As(err, &ce) {
		if code, ok := ce.Errno(); ok {
			data.Errno = &code
		}
	}

	t.trace.Log(tracelog.Event{
		Timestamp: time.Now(),
		SessionID: t.sessionID,
		Clock:     t.kind.String(),
		Category:  tracelog.CategoryError,
		Error:     data,
	})
}
