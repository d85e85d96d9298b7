package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful for development when you want to see timer events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("clock", event.Clock),
		slog.String("category", event.Category.String()),
	}

	// Add type-specific attributes
	switch {
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.ClockOp != nil:
		attrs = append(attrs,
			slog.String("op", event.ClockOp.Op),
			slog.Int64("interval_usec", event.ClockOp.IntervalUsec),
			slog.Int64("value_usec", event.ClockOp.ValueUsec),
		)
		if event.ClockOp.SpeedFactor != 0 {
			attrs = append(attrs, slog.Float64("speed_factor", event.ClockOp.SpeedFactor))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
		if event.Error.Errno != nil {
			attrs = append(attrs, slog.Int("errno", *event.Error.Errno))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "itimer", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
