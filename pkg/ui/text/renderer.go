// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/bodo-run/stop-nagging/pkg/types"
)

// Renderer provides plain text output without colors or styling. Warnings
// go to errOut, everything else to out.
type Renderer struct {
	output io.Writer
	errOut io.Writer
}

// New creates a new text renderer
func New(output, errOut io.Writer) *Renderer {
	return &Renderer{output: output, errOut: errOut}
}

// Report writes the status line of an event
func (r *Renderer) Report(e types.Event) {
	w := r.output
	if e.IsWarning() {
		w = r.errOut
	}
	_, _ = fmt.Fprintln(w, Line(e))
}

// RenderSummary writes the run summary
func (r *Renderer) RenderSummary(s *types.RunSummary) error {
	_, err := fmt.Fprintln(r.output, SummaryLine(s))
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.errOut, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// RenderWarning renders a warning message on the error stream
func (r *Renderer) RenderWarning(msg string) error {
	_, err := fmt.Fprintf(r.errOut, "Warning: %s\n", msg)
	return err
}
