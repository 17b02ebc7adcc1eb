package types

import "time"

// ToolStatus is the final state of a tool after a run.
type ToolStatus string

const (
	ToolProcessed   ToolStatus = "processed"
	ToolIgnored     ToolStatus = "ignored"
	ToolUnavailable ToolStatus = "unavailable"
)

// CommandResult pairs a configured command with what happened when it ran.
type CommandResult struct {
	Command string  `json:"command"`
	Outcome Outcome `json:"outcome"`
}

// ToolResult records how one tool was handled.
type ToolResult struct {
	Ecosystem  string          `json:"ecosystem"`
	Tool       string          `json:"tool"`
	Status     ToolStatus      `json:"status"`
	Reason     SkipReason      `json:"reason,omitempty"`
	EnvApplied []string        `json:"env_applied,omitempty"`
	Commands   []CommandResult `json:"commands,omitempty"`
}

// Failed reports whether any of the tool's commands failed.
func (r ToolResult) Failed() bool {
	for _, c := range r.Commands {
		if !c.Outcome.Success {
			return true
		}
	}
	return false
}

// EcosystemResult records whether an ecosystem was walked.
type EcosystemResult struct {
	Name      string     `json:"name"`
	Processed bool       `json:"processed"`
	Reason    SkipReason `json:"reason,omitempty"`
}

// RunSummary aggregates the outcome of one engine run.
type RunSummary struct {
	RunID      string            `json:"run_id"`
	DryRun     bool              `json:"dry_run"`
	Ecosystems []EcosystemResult `json:"ecosystems"`
	Tools      []ToolResult      `json:"tools"`

	CommandsSucceeded int `json:"commands_succeeded"`
	CommandsFailed    int `json:"commands_failed"`
	EnvApplied        int `json:"env_applied"`
	EnvRestored       int `json:"env_restored"`

	Duration time.Duration `json:"duration"`
}

// ToolsWithStatus counts tools that ended in the given status.
func (s *RunSummary) ToolsWithStatus(status ToolStatus) int {
	n := 0
	for _, t := range s.Tools {
		if t.Status == status {
			n++
		}
	}
	return n
}

// EcosystemsProcessed counts ecosystems whose tools were walked.
func (s *RunSummary) EcosystemsProcessed() int {
	n := 0
	for _, e := range s.Ecosystems {
		if e.Processed {
			n++
		}
	}
	return n
}
