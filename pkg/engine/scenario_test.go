// pkg/engine/scenario_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: POSIX shell, process environment
// PURPOSE: Run the echo-tool configuration against the real shell

package engine_test

import (
	"os"
	"runtime"
	"testing"

	"github.com/bodo-run/stop-nagging/pkg/engine"
	"github.com/bodo-run/stop-nagging/pkg/selection"
	"github.com/bodo-run/stop-nagging/pkg/testutil"
	"github.com/bodo-run/stop-nagging/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetForTest removes key for the duration of the test.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestEchoTool_SetsRunsAndRestores(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("echo-tool scenario uses the POSIX shell")
	}
	unsetForTest(t, "FOO")

	var fooDuringCommand string
	var fooSeen bool
	reporter := engine.ReporterFunc(func(e types.Event) {
		if e.Kind == types.EventCommandSucceeded && e.Command == "echo hi" {
			fooDuringCommand, fooSeen = os.LookupEnv("FOO")
			assert.Equal(t, "hi\n", e.Outcome.Stdout)
		}
	})

	eng, err := engine.New(engine.Options{
		Config:   testutil.EchoToolConfig(),
		Reporter: reporter,
	})
	require.NoError(t, err)

	summary := eng.Run()

	assert.True(t, fooSeen)
	assert.Equal(t, "bar", fooDuringCommand)
	assert.Equal(t, 1, summary.CommandsSucceeded)
	assert.Equal(t, 0, summary.CommandsFailed)

	_, present := os.LookupEnv("FOO")
	assert.False(t, present, "FOO must be removed after the run")
}

func TestEchoTool_RestoresExistingValue(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("echo-tool scenario uses the POSIX shell")
	}
	t.Setenv("FOO", "original")

	eng, err := engine.New(engine.Options{Config: testutil.EchoToolConfig()})
	require.NoError(t, err)
	eng.Run()

	assert.Equal(t, "original", os.Getenv("FOO"))
}

func TestEchoTool_IgnoredDoesNothing(t *testing.T) {
	unsetForTest(t, "FOO")

	prober := testutil.NewFakeProber("echo")
	executor := testutil.NewFakeExecutor()
	reporter := &testutil.RecordingReporter{}

	eng, err := engine.New(engine.Options{
		Config:   testutil.EchoToolConfig(),
		Filter:   selection.NewFilter(selection.Options{IgnoreTools: []string{"echo-tool"}}),
		Prober:   prober,
		Executor: executor,
		Reporter: reporter,
	})
	require.NoError(t, err)

	summary := eng.Run()

	assert.Empty(t, prober.ExecutableCalls)
	assert.Empty(t, executor.Commands)
	assert.Equal(t, 0, summary.EnvApplied)
	_, present := os.LookupEnv("FOO")
	assert.False(t, present)
	assert.Equal(t, []types.EventKind{
		types.EventEcosystemChecking,
		types.EventToolIgnored,
	}, reporter.Kinds())
}
