package types

// SkipReason says why an ecosystem or tool was not processed.
type SkipReason string

const (
	ReasonNone                 SkipReason = ""
	ReasonEcosystemExcluded    SkipReason = "excluded"
	ReasonEcosystemNotSelected SkipReason = "not-selected"
	ReasonPreconditionFailed   SkipReason = "precondition-failed"
	ReasonToolSkipFlag         SkipReason = "skip-flag"
	ReasonToolIgnored          SkipReason = "ignored"
	ReasonExecutableMissing    SkipReason = "executable-missing"
)

// EventKind identifies a step of a run.
type EventKind string

const (
	EventEcosystemSkipped     EventKind = "ecosystem-skipped"
	EventEcosystemUnavailable EventKind = "ecosystem-unavailable"
	EventEcosystemChecking    EventKind = "ecosystem-checking"
	EventToolIgnored          EventKind = "tool-ignored"
	EventToolUnavailable      EventKind = "tool-unavailable"
	EventToolProcessing       EventKind = "tool-processing"
	EventEnvApplied           EventKind = "env-applied"
	EventEnvApplyFailed       EventKind = "env-apply-failed"
	EventCommandSucceeded     EventKind = "command-succeeded"
	EventCommandFailed        EventKind = "command-failed"
	EventEnvRestored          EventKind = "env-restored"
)

// Event is one step reported by the engine while it walks the configuration.
type Event struct {
	Kind      EventKind  `json:"kind"`
	Ecosystem string     `json:"ecosystem,omitempty"`
	Tool      string     `json:"tool,omitempty"`
	Reason    SkipReason `json:"reason,omitempty"`

	// Key and Value are set for env events. Unset marks a restore that
	// removed a variable which did not exist before the run.
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
	Unset bool   `json:"unset,omitempty"`

	Command string   `json:"command,omitempty"`
	Outcome *Outcome `json:"outcome,omitempty"`

	// Error carries the message of a non-command failure such as a rejected env assignment
	Error string `json:"error,omitempty"`

	DryRun bool `json:"dry_run,omitempty"`
}

// IsWarning reports whether the event is shown regardless of verbosity.
func (e Event) IsWarning() bool {
	switch e.Kind {
	case EventToolUnavailable, EventCommandFailed, EventEnvApplyFailed:
		return true
	}
	return false
}
