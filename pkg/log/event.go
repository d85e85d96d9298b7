package log

import (
	"time"
)

// Event represents a timer trace event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the timer instance (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Clock is the clock kind name (WALL, USER_CPU, TOTAL_CPU).
	Clock string `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	StateChange *StateChangeEvent `cbor:"5,keyasint,omitempty"` // Running/stopped transitions
	ClockOp     *ClockOpEvent     `cbor:"6,keyasint,omitempty"` // OS clock programmings/reads
	Error       *ErrorEventData   `cbor:"7,keyasint,omitempty"` // Failed operations
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryState indicates a timer state transition.
	CategoryState Category = 0
	// CategoryClock indicates an interaction with the OS clock facility.
	CategoryClock Category = 1
	// CategoryError indicates a failed operation.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryState:
		return "STATE"
	case CategoryClock:
		return "CLOCK"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent captures a timer state transition.
type StateChangeEvent struct {
	// OldState is the previous state (STOPPED or RUNNING).
	OldState string `cbor:"1,keyasint"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change (start, stop, close).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// ClockOpEvent captures a programming or read of the OS clock.
type ClockOpEvent struct {
	// Op is the operation performed (program, read, disarm).
	Op string `cbor:"1,keyasint"`

	// IntervalUsec is the programmed reload interval in microseconds.
	IntervalUsec int64 `cbor:"2,keyasint"`

	// ValueUsec is the programmed remaining value in microseconds.
	ValueUsec int64 `cbor:"3,keyasint"`

	// SpeedFactor is the speed factor in effect for this programming.
	SpeedFactor float64 `cbor:"4,keyasint,omitempty"`
}

// ErrorEventData captures a failed operation.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Errno is the OS error code (if the failure came from the clock facility).
	Errno *int `cbor:"2,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}
