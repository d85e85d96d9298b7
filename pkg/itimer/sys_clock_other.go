//go:build !linux

package itimer

import (
	"errors"
	"os"
)

// unsupportedClock stands in on platforms without setitimer support.
// Every operation fails; tests substitute their own Clock.
type unsupportedClock struct{}

func (unsupportedClock) Program(Kind, Setting) (Setting, error) {
	return Setting{}, errors.ErrUnsupported
}

func (unsupportedClock) Read(Kind) (Setting, error) {
	return Setting{}, errors.ErrUnsupported
}

// Signal returns nil on platforms without setitimer support.
func (k Kind) Signal() os.Signal {
	return nil
}

// defaultClock is the clock used when a Config does not supply one.
var defaultClock Clock = unsupportedClock{}
