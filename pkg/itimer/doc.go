// Package itimer implements process-scoped interval timers over the POSIX
// setitimer facility, with live speed rescaling.
//
// A Timer counts down a value; on expiry the kernel raises the clock kind's
// signal and reloads the counter from the interval. Three clock kinds exist
// per process: wall-clock time, user-mode CPU time, and total (user+system)
// CPU time. At most one live Timer per kind is allowed; construction of a
// second one fails with ErrAlreadyExists until the first is closed.
//
// # Normalized and Live Form
//
// The interval and value a caller works with are normalized, meaning they
// are expressed at speed factor 1.0. While a timer runs, the kernel holds
// the live form: normalized durations divided by the speed factor. A factor
// above 1.0 makes the timer expire faster than real time, below 1.0 slower.
// The speed factor can be changed while the timer is running; the live
// countdown is captured, rescaled and reprogrammed in one atomic
// read-and-disarm sequence so no tick is lost or counted twice.
//
// # Signal Handling
//
// This package never installs signal handlers. Expiry notification is the
// caller's responsibility:
//
//	tm, err := itimer.NewSeconds(itimer.Wall, 1.0)
//	...
//	ch := make(chan os.Signal, 1)
//	signal.Notify(ch, tm.Kind().Signal())
//	err = tm.Start()
//
// A signal raised by a previous programming may still be delivered after the
// timer is stopped or rescaled; handlers must tolerate that.
//
// # Concurrency
//
// Timer methods are serialized by an internal mutex, which covers this
// package's bookkeeping only. It does not serialize against asynchronous
// signal delivery, and it does not make concurrent construction of the same
// clock kind from multiple goroutines meaningful - the second construction
// simply fails.
package itimer
