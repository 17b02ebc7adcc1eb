// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/bodo-run/stop-nagging/pkg/types"
	"github.com/bodo-run/stop-nagging/pkg/ui/styles"
	"github.com/bodo-run/stop-nagging/pkg/ui/text"
	"github.com/pterm/pterm"
)

// Renderer prints events with pterm prefixes and lipgloss styles
type Renderer struct {
	output io.Writer
	errOut io.Writer

	info    *pterm.PrefixPrinter
	success *pterm.PrefixPrinter
	warning *pterm.PrefixPrinter
	failure *pterm.PrefixPrinter
}

// New creates a new terminal renderer
func New(output, errOut io.Writer) *Renderer {
	return &Renderer{
		output:  output,
		errOut:  errOut,
		info:    pterm.Info.WithWriter(output),
		success: pterm.Success.WithWriter(output),
		warning: pterm.Warning.WithWriter(errOut),
		failure: pterm.Error.WithWriter(errOut),
	}
}

// Report prints an event
func (r *Renderer) Report(e types.Event) {
	switch e.Kind {
	case types.EventEcosystemChecking:
		r.info.Println("Checking ecosystem: " + styles.Render("Ecosystem", e.Ecosystem))
	case types.EventToolUnavailable, types.EventEnvApplyFailed, types.EventCommandFailed:
		r.warning.Println(text.Line(e))
	case types.EventEnvApplied:
		verb := "Set"
		if e.DryRun {
			verb = "Would set"
		}
		r.step(fmt.Sprintf("%s %s=%s for %s", verb,
			styles.Render("Key", e.Key), e.Value, styles.Render("Tool", e.Tool)))
	case types.EventCommandSucceeded:
		verb := "Ran"
		if e.DryRun {
			verb = "Would run"
		}
		r.step(fmt.Sprintf("%s %s for %s", verb,
			styles.Render("Command", e.Command), styles.Render("Tool", e.Tool)))
	case types.EventToolProcessing:
		r.step(styles.Render("Tool", e.Tool))
	default:
		r.step(styles.Render("Muted", text.Line(e)))
	}
}

func (r *Renderer) step(line string) {
	_, _ = fmt.Fprintln(r.output, styles.Render("Indent", line))
}

// RenderSummary prints the run summary
func (r *Renderer) RenderSummary(s *types.RunSummary) error {
	if s.DryRun {
		if _, err := fmt.Fprintln(r.output, styles.Render("DryRunBanner", "DRY RUN: nothing was changed")); err != nil {
			return err
		}
	}
	if s.CommandsFailed > 0 {
		r.warning.Println(text.SummaryLine(s))
		return nil
	}
	r.success.Println(text.SummaryLine(s))
	return nil
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	r.failure.Println(err.Error())
	return nil
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	r.info.Println(msg)
	return nil
}

// RenderWarning renders a warning message
func (r *Renderer) RenderWarning(msg string) error {
	r.warning.Println(msg)
	return nil
}
