// Package logging assembles the structured slog loggers used across dotkit
// commands.
//
// It owns the configurable console/JSON handlers, centralizes level and
// output plumbing, and tags every line with a per-invocation run ID so log
// files remain attributable when several invocations interleave. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every command
// emits data with the same shape.
package logging
