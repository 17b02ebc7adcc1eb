// Package json provides machine-readable JSON-lines output
package json

import (
	"encoding/json"
	"io"

	"github.com/bodo-run/stop-nagging/pkg/types"
)

// Renderer writes one JSON object per line for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	return &Renderer{encoder: json.NewEncoder(output)}
}

type eventLine struct {
	Type string `json:"type"`
	types.Event
}

type summaryLine struct {
	Type string `json:"type"`
	*types.RunSummary
}

// Report encodes an event
func (r *Renderer) Report(e types.Event) {
	_ = r.encoder.Encode(eventLine{Type: "event", Event: e})
}

// RenderSummary encodes the run summary
func (r *Renderer) RenderSummary(s *types.RunSummary) error {
	return r.encoder.Encode(summaryLine{Type: "summary", RunSummary: s})
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{"type": "error", "error": err.Error()})
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"type": "message", "message": msg})
}

// RenderWarning renders a warning as JSON
func (r *Renderer) RenderWarning(msg string) error {
	return r.encoder.Encode(map[string]string{"type": "warning", "warning": msg})
}
