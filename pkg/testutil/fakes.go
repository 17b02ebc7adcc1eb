package testutil

import (
	"fmt"
	"sort"
	"time"

	"github.com/bodo-run/stop-nagging/pkg/types"
)

// MapEnv is an in-memory environment table. Set and Unset are journaled as
// "set KEY=VALUE" and "unset KEY".
type MapEnv struct {
	vars    map[string]string
	reject  map[string]bool
	Journal *Journal
}

// NewMapEnv creates a table holding a copy of initial.
func NewMapEnv(initial map[string]string) *MapEnv {
	vars := make(map[string]string, len(initial))
	for k, v := range initial {
		vars[k] = v
	}
	return &MapEnv{vars: vars, reject: map[string]bool{}}
}

// Reject makes every later Set of key fail.
func (m *MapEnv) Reject(key string) {
	m.reject[key] = true
}

// Lookup implements environment.Environment.
func (m *MapEnv) Lookup(key string) (string, bool) {
	v, ok := m.vars[key]
	return v, ok
}

// Set implements environment.Environment.
func (m *MapEnv) Set(key, value string) error {
	if m.reject[key] {
		return fmt.Errorf("setenv %s: rejected", key)
	}
	m.vars[key] = value
	m.Journal.Record("set %s=%s", key, value)
	return nil
}

// Unset implements environment.Environment.
func (m *MapEnv) Unset(key string) error {
	delete(m.vars, key)
	m.Journal.Record("unset %s", key)
	return nil
}

// Snapshot returns a copy of the table.
func (m *MapEnv) Snapshot() map[string]string {
	out := make(map[string]string, len(m.vars))
	for k, v := range m.vars {
		out[k] = v
	}
	return out
}

// Keys returns the defined keys, sorted.
func (m *MapEnv) Keys() []string {
	keys := make([]string, 0, len(m.vars))
	for k := range m.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FakeProber answers probes from fixed tables. Unknown executables are
// missing; unknown preconditions pass. Probes are journaled as
// "probe-exe NAME" and "probe-pre COMMAND".
type FakeProber struct {
	Executables   map[string]bool
	Preconditions map[string]bool
	Journal       *Journal

	ExecutableCalls   []string
	PreconditionCalls []string
}

// NewFakeProber creates a prober where the given executables are available.
func NewFakeProber(available ...string) *FakeProber {
	p := &FakeProber{
		Executables:   map[string]bool{},
		Preconditions: map[string]bool{},
	}
	for _, name := range available {
		p.Executables[name] = true
	}
	return p
}

// ProbeExecutable implements platform.Prober.
func (p *FakeProber) ProbeExecutable(name string) bool {
	p.ExecutableCalls = append(p.ExecutableCalls, name)
	p.Journal.Record("probe-exe %s", name)
	return p.Executables[name]
}

// ProbePrecondition implements platform.Prober.
func (p *FakeProber) ProbePrecondition(command string) bool {
	p.PreconditionCalls = append(p.PreconditionCalls, command)
	p.Journal.Record("probe-pre %s", command)
	met, known := p.Preconditions[command]
	return !known || met
}

// FakeExecutor succeeds on every command unless an outcome is scripted for
// it. Runs are journaled as "run COMMAND".
type FakeExecutor struct {
	Outcomes map[string]types.Outcome
	Journal  *Journal
	Commands []string

	// OnRun, when set, is called before the outcome is returned
	OnRun func(command string)
}

// NewFakeExecutor creates an executor with no scripted outcomes.
func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{Outcomes: map[string]types.Outcome{}}
}

// Fail scripts command to exit with code and stderr.
func (e *FakeExecutor) Fail(command string, code int, stderr string) {
	e.Outcomes[command] = types.Outcome{
		ExitCode: code,
		Status:   fmt.Sprintf("exit status %d", code),
		Stderr:   stderr,
	}
}

// Run implements executor.Executor.
func (e *FakeExecutor) Run(command string) types.Outcome {
	e.Commands = append(e.Commands, command)
	e.Journal.Record("run %s", command)
	if e.OnRun != nil {
		e.OnRun(command)
	}
	if outcome, ok := e.Outcomes[command]; ok {
		return outcome
	}
	return types.Succeeded("", "", time.Millisecond)
}

// RecordingReporter keeps every event it is given.
type RecordingReporter struct {
	Events []types.Event
}

// Report implements engine.Reporter.
func (r *RecordingReporter) Report(e types.Event) {
	r.Events = append(r.Events, e)
}

// Kinds returns the kinds of all recorded events in order.
func (r *RecordingReporter) Kinds() []types.EventKind {
	kinds := make([]types.EventKind, 0, len(r.Events))
	for _, e := range r.Events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

// OfKind returns the recorded events of the given kind.
func (r *RecordingReporter) OfKind(kind types.EventKind) []types.Event {
	var out []types.Event
	for _, e := range r.Events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
