package testutil

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"time"

	"github.com/bodo-run/stop-nagging/pkg/errors"
	"github.com/bodo-run/stop-nagging/pkg/logging"
	"github.com/bodo-run/stop-nagging/pkg/platform"
	"github.com/bodo-run/stop-nagging/pkg/types"
)

// DefaultInstallTimeout bounds a single install hint.
const DefaultInstallTimeout = 2 * time.Minute

// pipeGrace is how long Run waits for output pipes after the deadline kill.
const pipeGrace = 500 * time.Millisecond

// RunWithTimeout runs command through the platform shell and kills it, along
// with every process it started, when timeout elapses. The production
// executor has no such bound.
func RunWithTimeout(command string, timeout time.Duration) types.Outcome {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	shell := platform.DefaultShell()
	args := append(append([]string{}, shell.Args...), command)
	cmd := exec.CommandContext(ctx, shell.Program, args...)
	killGroupOnCancel(cmd)
	cmd.WaitDelay = pipeGrace

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	d := time.Since(start)
	if err == nil {
		return types.Succeeded(stdout.String(), stderr.String(), d)
	}

	outcome := types.Outcome{
		ExitCode: -1,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: d,
	}
	if ctx.Err() == context.DeadlineExceeded {
		outcome.Status = "timed out after " + timeout.String()
		outcome.Err = errors.Wrap(ctx.Err(), errors.ErrCommandExit, "install hint timed out")
		return outcome
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		outcome.ExitCode = exitErr.ExitCode()
		outcome.Status = exitErr.ProcessState.String()
		outcome.Err = errors.Wrap(err, errors.ErrCommandExit, "install hint failed")
		return outcome
	}
	outcome.Err = errors.Wrap(err, errors.ErrCommandSpawn, "cannot start shell")
	return outcome
}

// InstallResult is the outcome of one tool's install hint.
type InstallResult struct {
	Ecosystem string
	Tool      string
	Command   string
	Outcome   types.Outcome
}

// InstallTools runs the install hint of every tool in cfg whose executable
// the prober cannot find. Tools without a hint are left alone.
func InstallTools(cfg *types.Config, prober platform.Prober, timeout time.Duration) []InstallResult {
	logger := logging.GetLogger("testutil.install")
	if timeout <= 0 {
		timeout = DefaultInstallTimeout
	}

	var results []InstallResult
	for _, eco := range cfg.Ecosystems {
		for _, tool := range eco.Tools {
			if tool.InstallHint == "" || prober.ProbeExecutable(tool.Executable) {
				continue
			}

			outcome := RunWithTimeout(tool.InstallHint, timeout)
			logger.Info().
				Str("tool", tool.Name).
				Str("command", tool.InstallHint).
				Bool("success", outcome.Success).
				Msg("Ran install hint")

			results = append(results, InstallResult{
				Ecosystem: eco.Name,
				Tool:      tool.Name,
				Command:   tool.InstallHint,
				Outcome:   outcome,
			})
		}
	}
	return results
}
