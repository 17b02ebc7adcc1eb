package platform

import (
	"bytes"
	"strings"

	"github.com/bodo-run/stop-nagging/pkg/logging"
	"github.com/rs/zerolog"
)

// Prober checks whether ecosystems and tools are usable on this host.
type Prober interface {
	// ProbeExecutable reports whether name resolves on the search path
	ProbeExecutable(name string) bool

	// ProbePrecondition reports whether command exits with status zero
	ProbePrecondition(command string) bool
}

// ShellProber answers probes by running the platform lookup through a Shell.
type ShellProber struct {
	shell  Shell
	logger zerolog.Logger
}

// NewShellProber creates a prober for the given shell.
func NewShellProber(shell Shell) *ShellProber {
	return &ShellProber{
		shell:  shell,
		logger: logging.GetLogger("platform.prober"),
	}
}

// ProbeExecutable implements Prober.
func (p *ShellProber) ProbeExecutable(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	found := p.run(p.shell.LookupCommand(name))
	p.logger.Debug().
		Str("executable", name).
		Bool("found", found).
		Msg("Probed executable")
	return found
}

// ProbePrecondition implements Prober.
func (p *ShellProber) ProbePrecondition(command string) bool {
	met := p.run(command)
	p.logger.Debug().
		Str("command", command).
		Bool("met", met).
		Msg("Probed precondition")
	return met
}

func (p *ShellProber) run(command string) bool {
	cmd := p.shell.Command(command)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		p.logger.Trace().
			Err(err).
			Str("command", command).
			Str("stderr", strings.TrimSpace(stderr.String())).
			Msg("Probe command did not succeed")
		return false
	}
	return true
}
