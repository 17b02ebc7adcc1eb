package executor

import (
	"bytes"
	stderrors "errors"
	"os/exec"
	"strings"
	"time"

	"github.com/bodo-run/stop-nagging/pkg/errors"
	"github.com/bodo-run/stop-nagging/pkg/logging"
	"github.com/bodo-run/stop-nagging/pkg/platform"
	"github.com/bodo-run/stop-nagging/pkg/types"
	"github.com/rs/zerolog"
)

// Executor runs one command to completion.
type Executor interface {
	Run(command string) types.Outcome
}

// Options contains configuration for the shell executor
type Options struct {
	Shell  platform.Shell
	Logger zerolog.Logger
}

// ShellExecutor runs commands through a platform shell and captures their
// output. It never retries and never times out.
type ShellExecutor struct {
	shell  platform.Shell
	logger zerolog.Logger
}

// New creates a new shell executor. A zero Shell means the platform default.
func New(opts Options) *ShellExecutor {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("executor")
	}

	shell := opts.Shell
	if shell.Program == "" {
		shell = platform.DefaultShell()
	}

	return &ShellExecutor{
		shell:  shell,
		logger: logger,
	}
}

// Run implements Executor.
func (e *ShellExecutor) Run(command string) types.Outcome {
	start := time.Now()

	cmd := e.shell.Command(command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	e.logger.Debug().
		Str("command", command).
		Str("shell", e.shell.Program).
		Msg("Running command")

	err := cmd.Run()
	outcome := outcomeFor(err, stdout.String(), stderr.String(), time.Since(start))

	event := e.logger.Debug()
	if !outcome.Success {
		event = e.logger.Info().Str("status", outcome.Describe())
	}
	event.
		Str("command", command).
		Int("exitCode", outcome.ExitCode).
		Dur("duration", outcome.Duration).
		Msg("Command finished")

	return outcome
}

func outcomeFor(err error, stdout, stderr string, d time.Duration) types.Outcome {
	if err == nil {
		return types.Succeeded(stdout, stderr, d)
	}

	outcome := types.Outcome{
		ExitCode: -1,
		Stdout:   stdout,
		Stderr:   stderr,
		Duration: d,
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		// ExitCode is -1 when the process was terminated by a signal
		outcome.ExitCode = exitErr.ExitCode()
		outcome.Status = exitErr.ProcessState.String()
		outcome.Err = errors.Wrap(err, errors.ErrCommandExit, "command exited unsuccessfully")
		return outcome
	}

	outcome.Err = errors.Wrap(err, errors.ErrCommandSpawn, "cannot start shell")
	outcome.Status = strings.TrimSpace(err.Error())
	return outcome
}
