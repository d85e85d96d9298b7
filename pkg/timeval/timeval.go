package timeval

import (
	"fmt"
	"math"
	"time"
)

// MicrosPerSecond is the number of microseconds in one second.
const MicrosPerSecond = 1_000_000

// Timeval is a span of time with microsecond resolution, stored as whole
// seconds plus microseconds. The zero value is a zero-length span.
type Timeval struct {
	// Sec is the whole-seconds part.
	Sec int64

	// Usec is the microseconds part, normally in [0, 1e6).
	Usec int64
}

// FromSeconds converts a float64 seconds value to a Timeval.
// The integral part is truncated to whole seconds and the fractional
// remainder converted to microseconds. Sub-microsecond precision is lost.
func FromSeconds(s float64) Timeval {
	return Timeval{
		Sec:  int64(s),
		Usec: int64(math.Mod(s, 1.0) * MicrosPerSecond),
	}
}

// FromDuration converts a time.Duration to a Timeval, truncating to
// microsecond resolution.
func FromDuration(d time.Duration) Timeval {
	us := d.Microseconds()
	return Timeval{
		Sec:  us / MicrosPerSecond,
		Usec: us % MicrosPerSecond,
	}
}

// Seconds returns the value as a float64 seconds count. Exact for the
// fixed-point representation.
func (t Timeval) Seconds() float64 {
	return float64(t.Sec) + float64(t.Usec)/MicrosPerSecond
}

// Duration returns the value as a time.Duration.
func (t Timeval) Duration() time.Duration {
	return time.Duration(t.Sec)*time.Second + time.Duration(t.Usec)*time.Microsecond
}

// Scale multiplies the value by factor and returns the result.
// The multiplication goes through the seconds representation; see the
// package documentation for why.
func (t Timeval) Scale(factor float64) Timeval {
	return FromSeconds(t.Seconds() * factor)
}

// Div divides the value by factor and returns the result.
func (t Timeval) Div(factor float64) Timeval {
	return FromSeconds(t.Seconds() / factor)
}

// IsZero reports whether both fields are zero. A zero interval means
// "do not reload" to the clock facility.
func (t Timeval) IsZero() bool {
	return t.Sec == 0 && t.Usec == 0
}

// Negative reports whether the whole-seconds part is negative.
func (t Timeval) Negative() bool {
	return t.Sec < 0
}

// String returns the value formatted as decimal seconds.
func (t Timeval) String() string {
	return fmt.Sprintf("%d.%06ds", t.Sec, t.Usec)
}
