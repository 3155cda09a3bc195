//go:build !pprof

package profile

// Modes returns the list of supported profiling modes. Without the
// pprof build tag no modes are available.
func Modes() []string { return nil }

func start(_, _ string, _ bool) interface{ Stop() } {
	return ignore{}
}
