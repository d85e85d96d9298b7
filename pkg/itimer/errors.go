package itimer

import (
	"errors"
	"fmt"
	"syscall"
)

// Timer errors.
var (
	// ErrAlreadyExists indicates a live timer of the same clock kind
	// already exists in this process.
	ErrAlreadyExists = errors.New("a timer of this clock kind already exists")

	// ErrUnknownKind indicates a Kind value outside Wall/UserCPU/TotalCPU.
	ErrUnknownKind = errors.New("unknown clock kind")

	// ErrAlreadyStarted indicates Start was called on a running timer.
	ErrAlreadyStarted = errors.New("timer already started")

	// ErrAlreadyStopped indicates Stop was called on a stopped timer.
	ErrAlreadyStopped = errors.New("timer already stopped")

	// ErrTimerRunning indicates a stopped-only operation was attempted
	// while the timer is running.
	ErrTimerRunning = errors.New("timer is running")

	// ErrInvalidSpeedFactor indicates a speed factor that is not finite
	// and strictly positive.
	ErrInvalidSpeedFactor = errors.New("speed factor must be finite and positive")

	// ErrNegativeInterval indicates scaling produced a negative interval.
	ErrNegativeInterval = errors.New("scaled timer interval is negative")

	// ErrNegativeValue indicates scaling produced a negative value.
	ErrNegativeValue = errors.New("scaled timer value is negative")

	// ErrDegenerateInterval indicates the speed factor collapsed a
	// non-zero interval to zero. A zero interval would silently turn a
	// repeating timer into a one-shot, so it is refused.
	ErrDegenerateInterval = errors.New("speed factor too large: scaled interval rounds to zero")

	// ErrClosed indicates the timer has been closed.
	ErrClosed = errors.New("timer is closed")
)

// ClockError reports a failed call into the OS clock facility.
// It wraps the underlying OS error; use errors.As with *ClockError or
// syscall.Errno to inspect it.
type ClockError struct {
	// Op is the failed syscall ("setitimer" or "getitimer").
	Op string

	// Kind is the clock kind the call targeted.
	Kind Kind

	// Err is the underlying OS error.
	Err error
}

func (e *ClockError) Error() string {
	return fmt.Sprintf("call of %s failed for %s timer: %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying OS error.
func (e *ClockError) Unwrap() error {
	return e.Err
}

// Errno returns the OS error code, if the underlying error carries one.
func (e *ClockError) Errno() (int, bool) {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return int(errno), true
	}
	return 0, false
}

// clockError wraps err as a ClockError for the given syscall and kind.
func clockError(op string, kind Kind, err error) error {
	return &ClockError{Op: op, Kind: kind, Err: err}
}
