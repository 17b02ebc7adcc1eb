package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// The tools document is decoded through yaml.Node so that ecosystem and
// env declaration order survives; Go maps would lose it.

// UnmarshalYAML decodes the document root. Unknown top-level keys are ignored.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	value = resolveAlias(value)
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: tools document must be a mapping", value.Line)
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], resolveAlias(value.Content[i+1])
		if key.Value != "ecosystems" {
			continue
		}
		if val.ShortTag() == "!!null" {
			continue
		}
		if val.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: ecosystems must be a mapping of name to ecosystem", val.Line)
		}
		for j := 0; j+1 < len(val.Content); j += 2 {
			var eco Ecosystem
			if err := val.Content[j+1].Decode(&eco); err != nil {
				return fmt.Errorf("ecosystem %q: %w", val.Content[j].Value, err)
			}
			eco.Name = val.Content[j].Value
			c.Ecosystems = append(c.Ecosystems, eco)
		}
	}
	return nil
}

type rawEcosystem struct {
	CheckCommand   string `yaml:"check_command"`
	CheckEcosystem string `yaml:"check_ecosystem"`
	Tools          []Tool `yaml:"tools"`
}

// UnmarshalYAML accepts check_ecosystem as an alias of check_command.
func (e *Ecosystem) UnmarshalYAML(value *yaml.Node) error {
	var raw rawEcosystem
	if err := value.Decode(&raw); err != nil {
		return err
	}
	e.CheckCommand = raw.CheckCommand
	if e.CheckCommand == "" {
		e.CheckCommand = raw.CheckEcosystem
	}
	e.Tools = raw.Tools
	return nil
}

type rawTool struct {
	Name              string   `yaml:"name"`
	Executable        string   `yaml:"executable"`
	Env               EnvVars  `yaml:"env"`
	Commands          []string `yaml:"commands"`
	Skip              bool     `yaml:"skip"`
	InstallHint       string   `yaml:"install_hint"`
	InstallForTesting string   `yaml:"install_for_testing"`
}

// UnmarshalYAML accepts install_for_testing as an alias of install_hint.
func (t *Tool) UnmarshalYAML(value *yaml.Node) error {
	var raw rawTool
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*t = Tool{
		Name:        raw.Name,
		Executable:  raw.Executable,
		Env:         raw.Env,
		Commands:    raw.Commands,
		Skip:        raw.Skip,
		InstallHint: raw.InstallHint,
	}
	if t.InstallHint == "" {
		t.InstallHint = raw.InstallForTesting
	}
	return nil
}

// UnmarshalYAML decodes a mapping of variable name to scalar value, keeping
// declaration order. Non-string scalars keep their literal text, so
// `FOO: 1` and `FOO: "1"` both assign "1".
func (e *EnvVars) UnmarshalYAML(value *yaml.Node) error {
	value = resolveAlias(value)
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: env must be a mapping of variable name to value", value.Line)
	}

	vars := make(EnvVars, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], resolveAlias(value.Content[i+1])
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: env value for %q must be a scalar", val.Line, key.Value)
		}
		v := val.Value
		if val.ShortTag() == "!!null" {
			v = ""
		}
		vars = append(vars, EnvVar{Key: key.Value, Value: v})
	}
	*e = vars
	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
