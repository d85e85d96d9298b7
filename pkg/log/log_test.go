package log

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func sampleEvent() Event {
	return Event{
		Timestamp: time.Now().UTC(),
		SessionID: "3f1e9f2a-0000-4000-8000-000000000001",
		Clock:     "WALL",
		Category:  CategoryClock,
		ClockOp: &ClockOpEvent{
			Op:           "program",
			IntervalUsec: 1_000_000,
			ValueUsec:    2_000_000,
			SpeedFactor:  1.0,
		},
	}
}

func TestEncodeDecodeEvent(t *testing.T) {
	ev := sampleEvent()

	data, err := EncodeEvent(ev)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	got, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if got.SessionID != ev.SessionID {
		t.Errorf("SessionID = %q, want %q", got.SessionID, ev.SessionID)
	}
	if got.Clock != ev.Clock {
		t.Errorf("Clock = %q, want %q", got.Clock, ev.Clock)
	}
	if got.Category != CategoryClock {
		t.Errorf("Category = %v, want CategoryClock", got.Category)
	}
	if got.ClockOp == nil {
		t.Fatal("ClockOp = nil, want payload")
	}
	if got.ClockOp.IntervalUsec != 1_000_000 || got.ClockOp.ValueUsec != 2_000_000 {
		t.Errorf("ClockOp = %+v, want interval 1s value 2s", got.ClockOp)
	}
	// Timestamp survives with nanosecond precision
	if !got.Timestamp.Equal(ev.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", got.Timestamp, ev.Timestamp)
	}
}

func TestEncodeStateChangeEvent(t *testing.T) {
	ev := Event{
		Timestamp: time.Now().UTC(),
		SessionID: "s1",
		Clock:     "USER_CPU",
		Category:  CategoryState,
		StateChange: &StateChangeEvent{
			OldState: "STOPPED",
			NewState: "RUNNING",
			Reason:   "start",
		},
	}

	data, err := EncodeEvent(ev)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	got, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}
	if got.StateChange == nil || got.StateChange.NewState != "RUNNING" {
		t.Errorf("StateChange = %+v, want RUNNING", got.StateChange)
	}
}

func TestFileLoggerAndReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timer.tlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	errno := 22
	events := []Event{
		sampleEvent(),
		{
			Timestamp: time.Now().UTC(),
			SessionID: "other-session",
			Clock:     "TOTAL_CPU",
			Category:  CategoryError,
			Error: &ErrorEventData{
				Message: "call of setitimer failed",
				Errno:   &errno,
				Context: "start",
			},
		},
	}
	for _, ev := range events {
		logger.Log(ev)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Logging after close is a no-op, not a panic.
	logger.Log(sampleEvent())

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	var count int
	for {
		ev, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if ev.SessionID != events[count].SessionID {
			t.Errorf("event %d SessionID = %q, want %q", count, ev.SessionID, events[count].SessionID)
		}
		count++
	}
	if count != len(events) {
		t.Errorf("read %d events, want %d", count, len(events))
	}
}

func TestFilteredReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timer.tlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		ev := sampleEvent()
		if i == 1 {
			ev.Clock = "USER_CPU"
		}
		logger.Log(ev)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reader, err := NewFilteredReader(path, Filter{Clock: "USER_CPU"})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	var count int
	for {
		ev, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if ev.Clock != "USER_CPU" {
			t.Errorf("filtered event Clock = %q, want USER_CPU", ev.Clock)
		}
		count++
	}
	if count != 1 {
		t.Errorf("filtered read returned %d events, want 1", count)
	}
}

func TestMultiLogger(t *testing.T) {
	var mu sync.Mutex
	var got []Event
	capture := loggerFunc(func(ev Event) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, ev)
	})

	multi := NewMultiLogger(capture, NoopLogger{}, capture)
	multi.Log(sampleEvent())

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 {
		t.Errorf("captured %d events, want 2", len(got))
	}
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	adapter := NewSlogAdapter(logger)

	adapter.Log(sampleEvent())
	ev := sampleEvent()
	ev.Category = CategoryState
	ev.ClockOp = nil
	ev.StateChange = &StateChangeEvent{OldState: "RUNNING", NewState: "STOPPED", Reason: "stop"}
	adapter.Log(ev)

	out := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte("clock=WALL")) {
		t.Errorf("slog output missing clock attribute: %q", out)
	}
	if !bytes.Contains(buf.Bytes(), []byte("new_state=STOPPED")) {
		t.Errorf("slog output missing state change: %q", out)
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryState, "STATE"},
		{CategoryClock, "CLOCK"},
		{CategoryError, "ERROR"},
		{Category(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

// loggerFunc adapts a function to the Logger interface.
type loggerFunc func(Event)

func (f loggerFunc) Log(ev Event) { f(ev) }
