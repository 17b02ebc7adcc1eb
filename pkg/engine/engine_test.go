// pkg/engine/engine_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: testutil fakes
// PURPOSE: Test the configuration walk, selection precedence and env restore

package engine_test

import (
	"testing"

	"github.com/bodo-run/stop-nagging/pkg/engine"
	"github.com/bodo-run/stop-nagging/pkg/selection"
	"github.com/bodo-run/stop-nagging/pkg/testutil"
	"github.com/bodo-run/stop-nagging/pkg/types"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	journal  *testutil.Journal
	env      *testutil.MapEnv
	prober   *testutil.FakeProber
	executor *testutil.FakeExecutor
	reporter *testutil.RecordingReporter
}

func newFixture(initial map[string]string, available ...string) *fixture {
	f := &fixture{
		journal:  &testutil.Journal{},
		env:      testutil.NewMapEnv(initial),
		prober:   testutil.NewFakeProber(available...),
		executor: testutil.NewFakeExecutor(),
		reporter: &testutil.RecordingReporter{},
	}
	f.env.Journal = f.journal
	f.executor.Journal = f.journal
	return f
}

func (f *fixture) run(t *testing.T, cfg *types.Config, sel selection.Options, dryRun bool) *types.RunSummary {
	t.Helper()
	eng, err := engine.New(engine.Options{
		Config:   cfg,
		Filter:   selection.NewFilter(sel),
		Prober:   f.prober,
		Env:      f.env,
		Executor: f.executor,
		Reporter: f.reporter,
		DryRun:   dryRun,
	})
	require.NoError(t, err)
	return eng.Run()
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := engine.New(engine.Options{})
	assert.Error(t, err)
}

func TestRun_PreservesDeclaredOrder(t *testing.T) {
	f := newFixture(nil, "X", "Y")
	cfg := testutil.Config(testutil.Ecosystem("eco",
		testutil.Tool("X", 2, 2),
		testutil.Tool("Y", 2, 2),
	))

	summary := f.run(t, cfg, selection.Options{}, false)

	assert.Equal(t, []string{
		"set X_ENV1=v1", "set X_ENV2=v2", "run X-cmd1", "run X-cmd2",
		"set Y_ENV1=v1", "set Y_ENV2=v2", "run Y-cmd1", "run Y-cmd2",
		"unset Y_ENV2", "unset Y_ENV1", "unset X_ENV2", "unset X_ENV1",
	}, f.journal.Entries())
	assert.Empty(t, f.env.Snapshot())
	assert.Equal(t, 4, summary.EnvApplied)
	assert.Equal(t, 4, summary.EnvRestored)
	assert.Equal(t, 4, summary.CommandsSucceeded)
	assert.Equal(t, 2, summary.ToolsWithStatus(types.ToolProcessed))
}

func TestRun_RestoresPriorValuesAcrossTools(t *testing.T) {
	f := newFixture(map[string]string{"SHARED": "orig", "EMPTY": ""}, "a", "b")
	cfg := testutil.Config(testutil.Ecosystem("eco",
		types.Tool{Name: "a", Executable: "a", Env: types.EnvVars{{Key: "SHARED", Value: "1"}, {Key: "EMPTY", Value: "x"}}},
		types.Tool{Name: "b", Executable: "b", Env: types.EnvVars{{Key: "SHARED", Value: "2"}, {Key: "NEW", Value: "n"}}},
	))

	f.run(t, cfg, selection.Options{}, false)

	assert.Equal(t, map[string]string{"SHARED": "orig", "EMPTY": ""}, f.env.Snapshot())

	restored := f.reporter.OfKind(types.EventEnvRestored)
	require.Len(t, restored, 4)
	assert.Equal(t, "NEW", restored[0].Key)
	assert.True(t, restored[0].Unset)
	assert.Equal(t, "SHARED", restored[3].Key)
	assert.Equal(t, "orig", restored[3].Value)
}

func TestRun_SkipFlagPreventsProbeApplyAndRun(t *testing.T) {
	f := newFixture(nil, "skipped")
	tool := testutil.Tool("skipped", 1, 1)
	tool.Skip = true

	summary := f.run(t, testutil.Config(testutil.Ecosystem("eco", tool)), selection.Options{}, false)

	assert.Empty(t, f.prober.ExecutableCalls)
	assert.Empty(t, f.journal.Entries())
	require.Len(t, summary.Tools, 1)
	assert.Equal(t, types.ToolIgnored, summary.Tools[0].Status)
	assert.Equal(t, types.ReasonToolSkipFlag, summary.Tools[0].Reason)
}

func TestRun_ExclusionWinsOverSelection(t *testing.T) {
	f := newFixture(nil, "X")
	eco := testutil.Ecosystem("nodejs", testutil.Tool("X", 1, 1))
	eco.CheckCommand = "node --version"

	summary := f.run(t, testutil.Config(eco), selection.Options{
		Ecosystems:        []string{"nodejs"},
		ExcludeEcosystems: []string{"NodeJS"},
	}, false)

	assert.Empty(t, f.prober.PreconditionCalls)
	assert.Empty(t, f.prober.ExecutableCalls)
	assert.Empty(t, f.journal.Entries())
	assert.Equal(t, 0, summary.EcosystemsProcessed())

	skipped := f.reporter.OfKind(types.EventEcosystemSkipped)
	require.Len(t, skipped, 1)
	assert.Equal(t, types.ReasonEcosystemExcluded, skipped[0].Reason)
}

func TestRun_NotSelectedEcosystem(t *testing.T) {
	f := newFixture(nil, "X", "Y")
	cfg := testutil.Config(
		testutil.Ecosystem("nodejs", testutil.Tool("X", 0, 1)),
		testutil.Ecosystem("python", testutil.Tool("Y", 0, 1)),
	)

	f.run(t, cfg, selection.Options{Ecosystems: []string{"python"}}, false)

	assert.Equal(t, []string{"run Y-cmd1"}, f.journal.Entries())
	skipped := f.reporter.OfKind(types.EventEcosystemSkipped)
	require.Len(t, skipped, 1)
	assert.Equal(t, types.ReasonEcosystemNotSelected, skipped[0].Reason)
}

func TestRun_FailedPreconditionSkipsEcosystem(t *testing.T) {
	f := newFixture(nil, "X")
	f.prober.Preconditions["node --version"] = false
	eco := testutil.Ecosystem("nodejs", testutil.Tool("X", 1, 1))
	eco.CheckCommand = "node --version"

	summary := f.run(t, testutil.Config(eco), selection.Options{}, false)

	assert.Equal(t, []string{"node --version"}, f.prober.PreconditionCalls)
	assert.Empty(t, f.prober.ExecutableCalls)
	assert.Empty(t, f.journal.Entries())
	assert.Equal(t, []types.EventKind{
		types.EventEcosystemChecking,
		types.EventEcosystemUnavailable,
	}, f.reporter.Kinds())
	require.Len(t, summary.Ecosystems, 1)
	assert.Equal(t, types.ReasonPreconditionFailed, summary.Ecosystems[0].Reason)
}

func TestRun_CommandFailureIsNotFatal(t *testing.T) {
	f := newFixture(nil, "X", "Y")
	f.executor.Fail("X-cmd1", 1, "boom")
	cfg := testutil.Config(testutil.Ecosystem("eco",
		testutil.Tool("X", 0, 2),
		testutil.Tool("Y", 0, 1),
	))

	summary := f.run(t, cfg, selection.Options{}, false)

	assert.Equal(t, []string{"run X-cmd1", "run X-cmd2", "run Y-cmd1"}, f.journal.Entries())
	assert.Equal(t, 1, summary.CommandsFailed)
	assert.Equal(t, 2, summary.CommandsSucceeded)
	assert.True(t, summary.Tools[0].Failed())
	assert.False(t, summary.Tools[1].Failed())

	failed := f.reporter.OfKind(types.EventCommandFailed)
	require.Len(t, failed, 1)
	assert.True(t, failed[0].IsWarning())
	assert.Equal(t, "exit status 1: boom", failed[0].Outcome.Describe())
}

func TestRun_UnavailableExecutableWarns(t *testing.T) {
	f := newFixture(nil)
	summary := f.run(t, testutil.Config(testutil.Ecosystem("eco", testutil.Tool("X", 2, 2))), selection.Options{}, false)

	assert.Empty(t, f.journal.Entries())
	assert.Equal(t, []string{"X"}, f.prober.ExecutableCalls)

	unavailable := f.reporter.OfKind(types.EventToolUnavailable)
	require.Len(t, unavailable, 1)
	assert.True(t, unavailable[0].IsWarning())
	assert.Equal(t, types.ToolUnavailable, summary.Tools[0].Status)
}

func TestRun_RejectedAssignmentContinues(t *testing.T) {
	f := newFixture(nil, "X")
	f.env.Reject("X_ENV1")

	summary := f.run(t, testutil.Config(testutil.Ecosystem("eco", testutil.Tool("X", 2, 1))), selection.Options{}, false)

	assert.Equal(t, []string{"set X_ENV2=v2", "run X-cmd1", "unset X_ENV2"}, f.journal.Entries())
	assert.Len(t, f.reporter.OfKind(types.EventEnvApplyFailed), 1)
	assert.Equal(t, []string{"X_ENV2"}, summary.Tools[0].EnvApplied)
	assert.Equal(t, 1, summary.EnvRestored)
}

func TestRun_DryRunTouchesNothing(t *testing.T) {
	f := newFixture(map[string]string{"X_ENV1": "keep"}, "X")

	summary := f.run(t, testutil.Config(testutil.Ecosystem("eco", testutil.Tool("X", 2, 2))), selection.Options{}, true)

	assert.Empty(t, f.journal.Entries())
	assert.Empty(t, f.executor.Commands)
	assert.Equal(t, map[string]string{"X_ENV1": "keep"}, f.env.Snapshot())
	assert.True(t, summary.DryRun)
	assert.Equal(t, 2, summary.EnvApplied)
	assert.Equal(t, 0, summary.EnvRestored)

	for _, e := range f.reporter.OfKind(types.EventEnvApplied) {
		assert.True(t, e.DryRun)
	}
}

func TestRun_RestoresWhenCommandPanics(t *testing.T) {
	f := newFixture(map[string]string{"X_ENV1": "orig"}, "X")
	f.executor.OnRun = func(string) { panic("executor blew up") }

	eng, err := engine.New(engine.Options{
		Config:   testutil.Config(testutil.Ecosystem("eco", testutil.Tool("X", 2, 1))),
		Prober:   f.prober,
		Env:      f.env,
		Executor: f.executor,
	})
	require.NoError(t, err)

	assert.Panics(t, func() { eng.Run() })
	assert.Equal(t, map[string]string{"X_ENV1": "orig"}, f.env.Snapshot())
}

func TestRun_AssignsRunID(t *testing.T) {
	f := newFixture(nil)
	first := f.run(t, testutil.Config(), selection.Options{}, false)
	second := f.run(t, testutil.Config(), selection.Options{}, false)

	_, err := ulid.Parse(first.RunID)
	require.NoError(t, err)
	assert.NotEqual(t, first.RunID, second.RunID)
}
