// Package ui renders engine events and run summaries. It supports terminal
// (rich), text (plain) and JSON-lines output formats.
package ui

import (
	"io"

	"github.com/bodo-run/stop-nagging/pkg/errors"
	"github.com/bodo-run/stop-nagging/pkg/types"
	"github.com/bodo-run/stop-nagging/pkg/ui/json"
	"github.com/bodo-run/stop-nagging/pkg/ui/terminal"
	"github.com/bodo-run/stop-nagging/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// Report renders one engine event
	Report(e types.Event)

	// RenderSummary renders the result of a run
	RenderSummary(s *types.RunSummary) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error

	// RenderWarning renders a warning that is not tied to an event
	RenderWarning(msg string) error
}

// Options controls renderer construction.
type Options struct {
	// Verbose shows every step; otherwise only warnings and the summary
	Verbose bool

	// ErrOut receives warnings and errors. Defaults to Output.
	ErrOut io.Writer
}

// NewRenderer creates a renderer for format. FormatAuto is resolved against
// both output and ErrOut, since warnings are written to the latter.
func NewRenderer(format Format, output io.Writer, opts Options) (Renderer, error) {
	errOut := opts.ErrOut
	if errOut == nil {
		errOut = output
	}

	var r Renderer
	switch format.Resolve(output, errOut) {
	case FormatTerminal:
		r = terminal.New(output, errOut)
	case FormatText:
		r = text.New(output, errOut)
	case FormatJSON:
		r = json.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}

	if !opts.Verbose {
		r = &quiet{Renderer: r}
	}
	return r, nil
}

// quiet drops step events and keeps warnings.
type quiet struct {
	Renderer
}

func (q *quiet) Report(e types.Event) {
	if e.IsWarning() {
		q.Renderer.Report(e)
	}
}
