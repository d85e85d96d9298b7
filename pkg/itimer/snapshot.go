package itimer

import (
	"encoding/binary"
	"fmt"
	"io"
)

// SnapshotSize is the size of the fixed binary snapshot record: two
// (seconds, microseconds) int64 pairs, interval first, in the host's native
// byte order. The record is an internal checkpoint format, byte-compatible
// across runs of the same build, not a portable interchange format.
const SnapshotSize = 32

// WriteSnapshot writes the snapshot record to w.
//
// The record holds the normalized interval and value. While running, the
// live value is read from the clock and un-scaled first; that read can fail
// with a ClockError. The clock kind and speed factor are deliberately not
// part of the record: restoring a snapshot does not restore speed.
func (t *Timer) WriteSnapshot(w io.Writer) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec := Setting{Interval: t.interval, Value: t.value}
	if t.running {
		cur, err := t.clock.Read(t.kind)
		if err != nil {
			err = clockError("getitimer", t.kind, err)
			t.emitError(err, "snapshot")
			return err
		}
		rec.Value = cur.Value.Scale(t.speedFactor)
	}

	var buf [SnapshotSize]byte
	binary.NativeEndian.PutUint64(buf[0:8], uint64(rec.Interval.Sec))
	binary.NativeEndian.PutUint64(buf[8:16], uint64(rec.Interval.Usec))
	binary.NativeEndian.PutUint64(buf[16:24], uint64(rec.Value.Sec))
	binary.NativeEndian.PutUint64(buf[24:32], uint64(rec.Value.Usec))

	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot reads a snapshot record from r and overwrites the normalized
// interval and value.
//
// Only allowed while stopped; fails with ErrTimerRunning otherwise. The
// speed factor is left as it was.
func (t *Timer) ReadSnapshot(r io.Reader) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	if t.running {
		return ErrTimerRunning
	}

	var buf [SnapshotSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	t.interval.Sec = int64(binary.NativeEndian.Uint64(buf[0:8]))
	t.interval.Usec = int64(binary.NativeEndian.Uint64(buf[8:16]))
	t.value.Sec = int64(binary.NativeEndian.Uint64(buf[16:24]))
	t.value.Usec = int64(binary.NativeEndian.Uint64(buf[24:32]))
	return nil
}
