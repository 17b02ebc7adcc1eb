package ui

import (
	"io"
	"os"
	"strings"

	"github.com/bodo-run/stop-nagging/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects a renderer. It decodes from settings text, so "--format",
// STOP_NAGGING_FORMAT and the settings file all share one parser.
type Format int

const (
	// FormatAuto picks terminal or text once the destination is known
	FormatAuto Format = iota
	FormatTerminal
	FormatText
	FormatJSON
)

var formatNames = [...]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
	FormatJSON:     "json",
}

var formatAliases = map[string]Format{
	"":         FormatAuto,
	"terminal": FormatTerminal,
	"plain":    FormatText,
}

func (f Format) valid() bool {
	return f >= 0 && int(f) < len(formatNames)
}

func (f Format) String() string {
	if !f.valid() {
		return "unknown"
	}
	return formatNames[f]
}

// MarshalText writes the canonical name, as used in the settings template.
func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %d", int(f))
	}
	return []byte(formatNames[f]), nil
}

// UnmarshalText accepts the canonical names and their aliases in any case.
func (f *Format) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, canonical := range formatNames {
		if name == canonical {
			*f = Format(i)
			return nil
		}
	}
	if alias, ok := formatAliases[name]; ok {
		*f = alias
		return nil
	}
	return errors.Newf(errors.ErrInvalidInput, "unknown format: %s (want auto, term, text or json)", text).
		WithDetail("format", string(text))
}

// Resolve replaces FormatAuto with a concrete format for the given
// destinations. Rich output needs every destination to be a colour terminal;
// anything that is not an *os.File counts as a pipe.
func (f Format) Resolve(destinations ...io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	if os.Getenv("NO_COLOR") != "" || len(destinations) == 0 {
		return FormatText
	}
	for _, w := range destinations {
		file, ok := w.(*os.File)
		if !ok || !colorTerminal(file) {
			return FormatText
		}
	}
	return FormatTerminal
}

func colorTerminal(file *os.File) bool {
	fd := file.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false
	}
	return termenv.NewOutput(file).ColorProfile() != termenv.Ascii
}
