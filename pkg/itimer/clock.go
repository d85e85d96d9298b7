package itimer

import (
	"github.com/procclock/itimer-go/pkg/timeval"
)

// Setting is one programming of a countdown clock: the reload interval
// applied after each expiry and the remaining value until the next expiry.
// It mirrors the kernel's struct itimerval. The zero value disarms a clock.
type Setting struct {
	// Interval is the reload duration applied after each expiry.
	// Zero means the clock fires once and does not reload.
	Interval timeval.Timeval

	// Value is the remaining duration until the next expiry.
	// Zero disarms the clock.
	Value timeval.Timeval
}

// IsZero reports whether the setting disarms the clock.
func (s Setting) IsZero() bool {
	return s.Interval.IsZero() && s.Value.IsZero()
}

// Clock is the boundary to the OS countdown facility. The timer core
// depends only on this contract; the process-global implementation is
// SystemClock, tests substitute their own.
type Clock interface {
	// Program sets the countdown for the given clock kind and returns the
	// previously programmed setting. Setting and returning happen in one
	// syscall, so programming the zero Setting atomically reads-and-disarms
	// the clock.
	Program(kind Kind, next Setting) (prev Setting, err error)

	// Read returns the current setting without modifying the clock.
	Read(kind Kind) (Setting, error)
}
