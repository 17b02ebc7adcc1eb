// Package executor runs configured commands through the platform shell.
//
// Each command is a single opaque string handed to `sh -c` (or `cmd /C` on
// Windows), so quoting, pipes and globbing are the shell's business. A run
// always produces a types.Outcome; failures to spawn the shell are reported
// in the outcome rather than as a separate error.
package executor
