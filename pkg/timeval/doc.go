// Package timeval implements fixed-point second/microsecond time values
// and the scaling arithmetic used to convert between normalized and
// speed-scaled timer durations.
//
// # Representation
//
// A Timeval holds a span of time as whole seconds plus microseconds,
// mirroring the kernel's struct timeval. Values are immutable; arithmetic
// operations return new values.
//
// # Scaling
//
// Scale and Div always convert through a float64 seconds value rather than
// scaling the two fields independently. Field-wise scaling would need carry
// handling across the 1e6-microsecond boundary; the round trip avoids that
// entirely. The cost is that results are only reliable to microsecond
// precision, which is all the underlying clock facility offers anyway.
//
// Scaling factors must be strictly positive. That is enforced by the timer
// core before values reach this package, not here.
package timeval
