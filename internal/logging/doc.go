// Package logging provides structured logging for the sysdirs CLI.
//
// It is built on log/slog with two output formats: a TTY-optimized
// colorized text handler for interactive use, and JSON for machine
// consumption. Color is applied only when the output writer is a
// terminal that supports it (NO_COLOR and TERM=dumb are respected).
//
// The verbosity flag count maps to levels through
// [LevelFromVerbosity]: 0 logs warnings and errors only, -v adds info,
// -vv adds debug, -vvv adds trace.
package logging
