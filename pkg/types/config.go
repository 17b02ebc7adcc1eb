package types

import "strings"

// Config is the root of a tools document: ecosystems in declared order.
type Config struct {
	Ecosystems []Ecosystem `json:"ecosystems"`
}

// Ecosystem groups related tools behind an optional precondition command.
type Ecosystem struct {
	// Name is the mapping key the ecosystem was declared under
	Name string `json:"name"`

	// CheckCommand, when set, must exit zero for any tool of the ecosystem to run
	CheckCommand string `json:"check_command,omitempty"`

	// Tools run in declared order
	Tools []Tool `json:"tools"`
}

// Tool is a single external program whose nags are to be suppressed.
type Tool struct {
	Name       string   `json:"name"`
	Executable string   `json:"executable"`
	Env        EnvVars  `json:"env,omitempty"`
	Commands   []string `json:"commands,omitempty"`
	Skip       bool     `json:"skip,omitempty"`

	// InstallHint is a command that makes Executable available. It is only
	// consulted by test and bootstrap helpers, never by the engine.
	InstallHint string `json:"install_hint,omitempty"`
}

// EnvVar is one environment assignment of a tool.
type EnvVar struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// EnvVars keeps assignments in the order they were declared.
type EnvVars []EnvVar

// Get returns the value of the last assignment to key.
func (e EnvVars) Get(key string) (string, bool) {
	for i := len(e) - 1; i >= 0; i-- {
		if e[i].Key == key {
			return e[i].Value, true
		}
	}
	return "", false
}

// Keys returns the assigned keys in declaration order.
func (e EnvVars) Keys() []string {
	keys := make([]string, 0, len(e))
	for _, v := range e {
		keys = append(keys, v.Key)
	}
	return keys
}

// Ecosystem looks up an ecosystem by case-insensitive name.
func (c *Config) Ecosystem(name string) (*Ecosystem, bool) {
	for i := range c.Ecosystems {
		if strings.EqualFold(c.Ecosystems[i].Name, name) {
			return &c.Ecosystems[i], true
		}
	}
	return nil, false
}

// EcosystemNames returns ecosystem names in declared order.
func (c *Config) EcosystemNames() []string {
	names := make([]string, 0, len(c.Ecosystems))
	for _, eco := range c.Ecosystems {
		names = append(names, eco.Name)
	}
	return names
}

// ToolCount returns the number of tools across all ecosystems.
func (c *Config) ToolCount() int {
	n := 0
	for _, eco := range c.Ecosystems {
		n += len(eco.Tools)
	}
	return n
}
