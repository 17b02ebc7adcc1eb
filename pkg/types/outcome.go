package types

import (
	"fmt"
	"strings"
	"time"
)

// Outcome is the result of running one shell command.
type Outcome struct {
	Success bool `json:"success"`

	// ExitCode is -1 when the process never started or was killed by a signal
	ExitCode int `json:"exit_code"`

	// Status is the process state as reported by the OS, e.g. "exit status 2"
	// or "signal: killed". Empty on success.
	Status string `json:"status,omitempty"`

	Stdout string `json:"-"`
	Stderr string `json:"stderr,omitempty"`

	// Err is set when the shell itself could not be spawned
	Err error `json:"-"`

	Duration time.Duration `json:"duration"`
}

// Succeeded builds a successful outcome.
func Succeeded(stdout, stderr string, d time.Duration) Outcome {
	return Outcome{Success: true, Stdout: stdout, Stderr: stderr, Duration: d}
}

// Describe renders the failure cause for log and status lines.
func (o Outcome) Describe() string {
	if o.Success {
		return "ok"
	}
	var parts []string
	switch {
	case o.Err != nil && o.Status == "":
		parts = append(parts, o.Err.Error())
	case o.Status != "":
		parts = append(parts, o.Status)
	default:
		parts = append(parts, fmt.Sprintf("exit status %d", o.ExitCode))
	}
	if msg := strings.TrimSpace(o.Stderr); msg != "" {
		parts = append(parts, msg)
	}
	return strings.Join(parts, ": ")
}
