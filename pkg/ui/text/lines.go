package text

import (
	"fmt"

	"github.com/bodo-run/stop-nagging/pkg/types"
)

// Line returns the plain status line for an event.
func Line(e types.Event) string {
	switch e.Kind {
	case types.EventEcosystemSkipped:
		if e.Reason == types.ReasonEcosystemExcluded {
			return "Ignoring entire ecosystem: " + e.Ecosystem
		}
		return fmt.Sprintf("Skipping ecosystem: %s (not selected)", e.Ecosystem)
	case types.EventEcosystemChecking:
		return "Checking ecosystem: " + e.Ecosystem
	case types.EventEcosystemUnavailable:
		return fmt.Sprintf("Skipping ecosystem %s: check command failed", e.Ecosystem)
	case types.EventToolIgnored:
		if e.Reason == types.ReasonToolSkipFlag {
			return fmt.Sprintf("Skipping tool: %s (skip: true)", e.Tool)
		}
		return "Ignoring tool: " + e.Tool
	case types.EventToolUnavailable:
		return fmt.Sprintf("Tool %s not found: executable '%s' not in PATH", e.Tool, e.Command)
	case types.EventToolProcessing:
		return "Processing tool: " + e.Tool
	case types.EventEnvApplied:
		if e.DryRun {
			return fmt.Sprintf("Would set %s=%s for tool %s", e.Key, e.Value, e.Tool)
		}
		return fmt.Sprintf("Set %s=%s for tool %s", e.Key, e.Value, e.Tool)
	case types.EventEnvApplyFailed:
		return fmt.Sprintf("Failed to set %s for tool %s: %s", e.Key, e.Tool, e.Error)
	case types.EventCommandSucceeded:
		if e.DryRun {
			return fmt.Sprintf("Would run command for %s: %s", e.Tool, e.Command)
		}
		return fmt.Sprintf("Ran command for %s: %s", e.Tool, e.Command)
	case types.EventCommandFailed:
		return fmt.Sprintf("Failed to run command '%s': %s", e.Command, describe(e.Outcome))
	case types.EventEnvRestored:
		if e.Unset {
			return "Unset " + e.Key
		}
		return "Restored " + e.Key
	}
	return string(e.Kind)
}

// SummaryLine condenses a run into one line.
func SummaryLine(s *types.RunSummary) string {
	prefix := "Done"
	if s.DryRun {
		prefix = "Dry run done"
	}
	return fmt.Sprintf("%s: %d tools processed, %d ignored, %d unavailable; %d commands ok, %d failed; %d env vars set, %d restored",
		prefix,
		s.ToolsWithStatus(types.ToolProcessed),
		s.ToolsWithStatus(types.ToolIgnored),
		s.ToolsWithStatus(types.ToolUnavailable),
		s.CommandsSucceeded,
		s.CommandsFailed,
		s.EnvApplied,
		s.EnvRestored,
	)
}

func describe(o *types.Outcome) string {
	if o == nil {
		return "unknown error"
	}
	return o.Describe()
}
