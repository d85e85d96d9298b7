// Package checkpoint persists timer snapshots to files.
//
// A snapshot records the timer's interval and remaining value (normalized
// form) as a fixed-size native-endian binary record. The clock kind and
// speed factor are not part of the record, so restoring a snapshot does not
// restore speed and a record can be loaded into a timer of a different
// kind.
//
// Snapshots are an internal checkpoint format for the same system, not a
// portable interchange format: records are byte-compatible across runs of
// the same build only.
package checkpoint
