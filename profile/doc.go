// Package profile provides optional runtime profiling for the graphwar
// application.
//
// The package integrates [github.com/pkg/profile] behind the "pprof"
// build tag. When built without the tag (the default), all operations
// are no-ops with zero runtime overhead.
//
// # Available Profiling Modes
//
// The following profiling modes are supported when built with the pprof
// tag:
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// Use [Modes] to retrieve the list of supported modes programmatically.
//
// # Usage
//
//	ctrl := profile.Config(func() (string, string, bool) {
//	    return "cpu", "/tmp/profiles", false
//	}).Start()
//	defer ctrl.Stop()
//
// Profile files are written to the configured directory with names
// matching the profiling mode (e.g., cpu.pprof, mem.pprof). Analyze
// them with:
//
//	go tool pprof ./graphwar /tmp/profiles/cpu.pprof
//
// Compilation is cheap, but evaluation runs once per active trajectory
// per tick, so the cpu and allocs modes are the ones usually worth
// collecting.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
