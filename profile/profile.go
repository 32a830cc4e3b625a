package profile

// Tag is the name of the build tag enabling profiling. It also names the
// default output subdirectory.
const Tag = "pprof"

// Profiler configures one profiling session.
type Profiler struct {
	// Mode is one of [Modes]. An empty or unknown mode disables profiling.
	Mode string
	// Path is the output directory; empty uses the current directory.
	Path string
	// Quiet suppresses the profiler's own start and stop messages.
	Quiet bool
}

// Stopper stops a running profiler. Stop is safe to call more than once.
type Stopper interface{ Stop() }

// Start starts the profiler and returns a [Stopper] for it.
//
// If the binary was built without the pprof tag, or Mode is empty or
// unknown, Start returns a no-op Stopper.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
