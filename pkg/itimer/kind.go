package itimer

// Kind identifies which countdown facility a timer observes.
type Kind uint8

const (
	// Wall counts down in real (wall clock) time.
	// Expiry raises SIGALRM.
	Wall Kind = iota

	// UserCPU counts down against user-mode CPU time consumed by the
	// process, including all threads. Expiry raises SIGVTALRM.
	UserCPU

	// TotalCPU counts down against total (user and system) CPU time
	// consumed by the process, including all threads. Expiry raises
	// SIGPROF. Combined with UserCPU it can be used to profile user and
	// system CPU time.
	TotalCPU
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Wall:
		return "WALL"
	case UserCPU:
		return "USER_CPU"
	case TotalCPU:
		return "TOTAL_CPU"
	default:
		return "UNKNOWN"
	}
}

// valid reports whether k names one of the three clock kinds.
func (k Kind) valid() bool {
	return k == Wall || k == UserCPU || k == TotalCPU
}
