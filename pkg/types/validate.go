package types

import (
	"fmt"
	"strings"

	"github.com/bodo-run/stop-nagging/pkg/errors"
)

// Validate checks the structural invariants the engine relies on. It returns
// the first violation found as an ErrConfigValid error.
func (c *Config) Validate() error {
	if len(c.Ecosystems) == 0 {
		return errors.New(errors.ErrConfigValid, "configuration defines no ecosystems")
	}

	seen := make(map[string]string, len(c.Ecosystems))
	for _, eco := range c.Ecosystems {
		if strings.TrimSpace(eco.Name) == "" {
			return errors.New(errors.ErrConfigValid, "ecosystem with empty name")
		}
		folded := strings.ToLower(eco.Name)
		if prev, ok := seen[folded]; ok {
			return errors.Newf(errors.ErrConfigValid, "ecosystem %q duplicates %q", eco.Name, prev).
				WithDetail("ecosystem", eco.Name)
		}
		seen[folded] = eco.Name

		if err := eco.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (e *Ecosystem) validate() error {
	tools := make(map[string]struct{}, len(e.Tools))
	for i, tool := range e.Tools {
		if strings.TrimSpace(tool.Name) == "" {
			return errors.Newf(errors.ErrConfigValid, "ecosystem %q: tool #%d has no name", e.Name, i+1).
				WithDetail("ecosystem", e.Name)
		}
		if _, dup := tools[tool.Name]; dup {
			return errors.Newf(errors.ErrConfigValid, "ecosystem %q: duplicate tool %q", e.Name, tool.Name).
				WithDetail("ecosystem", e.Name).
				WithDetail("tool", tool.Name)
		}
		tools[tool.Name] = struct{}{}

		if err := tool.validate(); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "ecosystem %q", e.Name).
				WithDetail("ecosystem", e.Name).
				WithDetail("tool", tool.Name)
		}
	}
	return nil
}

func (t *Tool) validate() error {
	if strings.TrimSpace(t.Executable) == "" {
		return fmt.Errorf("tool %q has no executable", t.Name)
	}
	for _, v := range t.Env {
		if v.Key == "" || strings.ContainsAny(v.Key, "=\x00") {
			return fmt.Errorf("tool %q: invalid environment variable name %q", t.Name, v.Key)
		}
	}
	return nil
}
