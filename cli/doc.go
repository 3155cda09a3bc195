// Package cli contains the command line interface for graphwar.
//
// # Usage
//
// Running without a subcommand opens the interactive curve entry form:
//
//	graphwar --log-level=debug
//
// Subcommands:
//   - entry: Open the interactive curve entry form (the default)
//   - check: Compile a curve submission and report the result
//   - sample: Compile a curve and print evenly spaced samples
//   - syntax: Print a quick reference for the expression language
//   - version: Print the program name and version
//
// # Configuration Loader
//
// The package includes a Kong configuration loader ([resolve]) that reads
// YAML config files and converts them to Kong flag values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o graphwar .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/graphwar/pprof)
//
// # Examples
//
//	# Debug logging while checking a curve
//	graphwar --log-level=debug check 't' 't^2'
//
//	# Sample a circle as JSON with CPU profiling
//	graphwar --pprof-mode=cpu sample 'cos (tau*t)' 'sin (tau*t)' --format=json
package cli
