package selection

import (
	"strings"

	"github.com/bodo-run/stop-nagging/pkg/types"
)

// Options holds the raw selection lists as given on the command line.
type Options struct {
	// Ecosystems restricts the run to these names. Empty means all.
	Ecosystems        []string
	ExcludeEcosystems []string
	IgnoreTools       []string
}

// Filter answers inclusion questions for a run.
type Filter struct {
	selected map[string]struct{}
	excluded map[string]struct{}
	ignored  map[string]struct{}

	selectedOrder []string
	excludedOrder []string
}

// NewFilter normalizes opts into a Filter.
func NewFilter(opts Options) *Filter {
	f := &Filter{}
	f.selected, f.selectedOrder = normalize(opts.Ecosystems)
	f.excluded, f.excludedOrder = normalize(opts.ExcludeEcosystems)
	f.ignored, _ = normalize(opts.IgnoreTools)
	return f
}

// EcosystemDecision reports whether the ecosystem runs and, if not, why.
func (f *Filter) EcosystemDecision(name string) (bool, types.SkipReason) {
	key := normalizeName(name)
	if _, ok := f.excluded[key]; ok {
		return false, types.ReasonEcosystemExcluded
	}
	if len(f.selected) == 0 {
		return true, types.ReasonNone
	}
	if _, ok := f.selected[key]; ok {
		return true, types.ReasonNone
	}
	return false, types.ReasonEcosystemNotSelected
}

// EcosystemIncluded reports whether the ecosystem takes part in the run.
func (f *Filter) EcosystemIncluded(name string) bool {
	ok, _ := f.EcosystemDecision(name)
	return ok
}

// ToolDecision reports whether the tool runs and, if not, why. The skip
// flag takes precedence over the ignore list.
func (f *Filter) ToolDecision(tool types.Tool) (bool, types.SkipReason) {
	if tool.Skip {
		return false, types.ReasonToolSkipFlag
	}
	if _, ok := f.ignored[normalizeName(tool.Name)]; ok {
		return false, types.ReasonToolIgnored
	}
	return true, types.ReasonNone
}

// ToolIncluded reports whether the tool takes part in the run.
func (f *Filter) ToolIncluded(tool types.Tool) bool {
	ok, _ := f.ToolDecision(tool)
	return ok
}

// UnknownEcosystems lists selected or excluded names that match no
// ecosystem in cfg, in the order they were given.
func (f *Filter) UnknownEcosystems(cfg *types.Config) []string {
	known := make(map[string]struct{}, len(cfg.Ecosystems))
	for _, eco := range cfg.Ecosystems {
		known[normalizeName(eco.Name)] = struct{}{}
	}

	var unknown []string
	seen := map[string]struct{}{}
	for _, name := range append(append([]string{}, f.selectedOrder...), f.excludedOrder...) {
		if _, ok := known[name]; ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		unknown = append(unknown, name)
	}
	return unknown
}

func normalize(names []string) (map[string]struct{}, []string) {
	set := make(map[string]struct{}, len(names))
	var order []string
	for _, raw := range names {
		name := normalizeName(raw)
		if name == "" {
			continue
		}
		if _, dup := set[name]; dup {
			continue
		}
		set[name] = struct{}{}
		order = append(order, name)
	}
	return set, order
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
