package config

import _ "embed"

//go:embed embedded/tools.yaml
var defaultTools []byte

// DefaultToolsYAML returns the embedded default tools document.
func DefaultToolsYAML() []byte {
	out := make([]byte, len(defaultTools))
	copy(out, defaultTools)
	return out
}
