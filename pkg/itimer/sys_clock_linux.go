//go:build linux

package itimer

import (
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/procclock/itimer-go/pkg/timeval"
)

// SystemClock programs the kernel's per-process interval timers via
// setitimer(2)/getitimer(2). All instances address the same three
// process-global clocks; the zero value is ready to use.
type SystemClock struct{}

// Program sets the countdown via setitimer and returns the previous setting.
func (SystemClock) Program(kind Kind, next Setting) (Setting, error) {
	prev, err := unix.Setitimer(kind.which(), unix.Itimerval{
		Interval: toUnixTimeval(next.Interval),
		Value:    toUnixTimeval(next.Value),
	})
	if err != nil {
		return Setting{}, err
	}
	return Setting{
		Interval: fromUnixTimeval(prev.Interval),
		Value:    fromUnixTimeval(prev.Value),
	}, nil
}

// Read returns the current setting via getitimer.
func (SystemClock) Read(kind Kind) (Setting, error) {
	cur, err := unix.Getitimer(kind.which())
	if err != nil {
		return Setting{}, err
	}
	return Setting{
		Interval: fromUnixTimeval(cur.Interval),
		Value:    fromUnixTimeval(cur.Value),
	}, nil
}

// Signal returns the signal the kernel raises when a timer of this kind
// expires. Callers install their own handler; see the package documentation.
func (k Kind) Signal() os.Signal {
	switch k {
	case Wall:
		return unix.SIGALRM
	case UserCPU:
		return unix.SIGVTALRM
	case TotalCPU:
		return unix.SIGPROF
	default:
		return nil
	}
}

// which maps a Kind to the setitimer clock identifier.
func (k Kind) which() unix.ItimerWhich {
	switch k {
	case UserCPU:
		return unix.ITIMER_VIRTUAL
	case TotalCPU:
		return unix.ITIMER_PROF
	default:
		return unix.ITIMER_REAL
	}
}

func toUnixTimeval(t timeval.Timeval) unix.Timeval {
	return unix.NsecToTimeval(t.Duration().Nanoseconds())
}

func fromUnixTimeval(tv unix.Timeval) timeval.Timeval {
	return timeval.FromDuration(time.Duration(unix.TimevalToNsec(tv)))
}

// defaultClock is the clock used when a Config does not supply one.
var defaultClock Clock = SystemClock{}

// Compile-time interface satisfaction check.
var _ Clock = SystemClock{}
