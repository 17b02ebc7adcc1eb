package engine

import (
	"time"

	"github.com/bodo-run/stop-nagging/pkg/environment"
	"github.com/bodo-run/stop-nagging/pkg/errors"
	"github.com/bodo-run/stop-nagging/pkg/executor"
	"github.com/bodo-run/stop-nagging/pkg/logging"
	"github.com/bodo-run/stop-nagging/pkg/platform"
	"github.com/bodo-run/stop-nagging/pkg/selection"
	"github.com/bodo-run/stop-nagging/pkg/types"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Reporter receives events as the engine walks the configuration.
type Reporter interface {
	Report(types.Event)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(types.Event)

// Report implements Reporter.
func (f ReporterFunc) Report(e types.Event) { f(e) }

// Options contains configuration for the engine. Only Config is required.
type Options struct {
	Config   *types.Config
	Filter   *selection.Filter
	Prober   platform.Prober
	Env      environment.Environment
	Executor executor.Executor
	Reporter Reporter
	Logger   zerolog.Logger

	// DryRun filters and probes as usual but neither sets variables nor
	// runs commands
	DryRun bool
}

// Engine executes one configuration.
type Engine struct {
	config   *types.Config
	filter   *selection.Filter
	prober   platform.Prober
	env      environment.Environment
	executor executor.Executor
	reporter Reporter
	logger   zerolog.Logger
	dryRun   bool
}

// New creates an engine, filling unset collaborators with the real ones.
func New(opts Options) (*Engine, error) {
	if opts.Config == nil {
		return nil, errors.New(errors.ErrInvalidInput, "engine needs a configuration")
	}

	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("engine")
	}

	e := &Engine{
		config:   opts.Config,
		filter:   opts.Filter,
		prober:   opts.Prober,
		env:      opts.Env,
		executor: opts.Executor,
		reporter: opts.Reporter,
		logger:   logger,
		dryRun:   opts.DryRun,
	}
	if e.filter == nil {
		e.filter = selection.NewFilter(selection.Options{})
	}
	if e.prober == nil {
		cached, err := platform.NewCachingProber(platform.NewShellProber(platform.DefaultShell()), 0)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot create probe cache")
		}
		e.prober = cached
	}
	if e.env == nil {
		e.env = environment.OS{}
	}
	if e.executor == nil {
		e.executor = executor.New(executor.Options{})
	}
	if e.reporter == nil {
		e.reporter = ReporterFunc(func(types.Event) {})
	}
	return e, nil
}

// run holds the state of a single Run call.
type run struct {
	*Engine
	scope   *environment.Scope
	summary *types.RunSummary
	logger  zerolog.Logger
}

// Run walks the configuration once. Environment changes made during the
// walk are undone before it returns.
func (e *Engine) Run() *types.RunSummary {
	start := time.Now()
	summary := &types.RunSummary{
		RunID:  ulid.Make().String(),
		DryRun: e.dryRun,
	}

	r := &run{
		Engine:  e,
		scope:   environment.NewScope(environment.NewMutator(e.env)),
		summary: summary,
		logger:  e.logger.With().Str("runID", summary.RunID).Logger(),
	}
	done := logging.LogOperationStart(r.logger, "run")
	defer done()

	r.scope.OnRestore = func(p environment.Prior) {
		summary.EnvRestored++
		r.reporter.Report(types.Event{
			Kind:  types.EventEnvRestored,
			Key:   p.Key,
			Value: p.Value,
			Unset: !p.Present,
		})
	}
	defer func() {
		n := r.scope.Restore()
		summary.Duration = time.Since(start)
		r.logger.Info().
			Int("restored", n).
			Int("commandsFailed", summary.CommandsFailed).
			Dur("duration", summary.Duration).
			Msg("Run finished")
	}()

	r.logger.Info().
		Int("ecosystems", len(e.config.Ecosystems)).
		Int("tools", e.config.ToolCount()).
		Bool("dryRun", e.dryRun).
		Msg("Run started")

	for i := range e.config.Ecosystems {
		r.ecosystem(&e.config.Ecosystems[i])
	}
	return summary
}

func (r *run) ecosystem(eco *types.Ecosystem) {
	included, reason := r.filter.EcosystemDecision(eco.Name)
	if !included {
		r.logger.Debug().
			Str("ecosystem", eco.Name).
			Str("reason", string(reason)).
			Msg("Skipping ecosystem")
		r.skipEcosystem(eco.Name, reason, types.EventEcosystemSkipped)
		return
	}

	r.reporter.Report(types.Event{Kind: types.EventEcosystemChecking, Ecosystem: eco.Name})

	if eco.CheckCommand != "" && !r.prober.ProbePrecondition(eco.CheckCommand) {
		r.logger.Info().
			Str("ecosystem", eco.Name).
			Str("check", eco.CheckCommand).
			Msg("Ecosystem precondition failed")
		r.skipEcosystem(eco.Name, types.ReasonPreconditionFailed, types.EventEcosystemUnavailable)
		return
	}

	r.summary.Ecosystems = append(r.summary.Ecosystems, types.EcosystemResult{
		Name:      eco.Name,
		Processed: true,
	})
	for i := range eco.Tools {
		r.tool(eco.Name, &eco.Tools[i])
	}
}

func (r *run) skipEcosystem(name string, reason types.SkipReason, kind types.EventKind) {
	r.summary.Ecosystems = append(r.summary.Ecosystems, types.EcosystemResult{
		Name:   name,
		Reason: reason,
	})
	r.reporter.Report(types.Event{Kind: kind, Ecosystem: name, Reason: reason})
}

func (r *run) tool(ecosystem string, tool *types.Tool) {
	logger := r.logger.With().
		Str("ecosystem", ecosystem).
		Str("tool", tool.Name).
		Logger()

	result := types.ToolResult{Ecosystem: ecosystem, Tool: tool.Name}

	// Selection is decided before any probe so skipped tools cost nothing
	if included, reason := r.filter.ToolDecision(*tool); !included {
		logger.Debug().Str("reason", string(reason)).Msg("Ignoring tool")
		result.Status = types.ToolIgnored
		result.Reason = reason
		r.summary.Tools = append(r.summary.Tools, result)
		r.reporter.Report(types.Event{
			Kind:      types.EventToolIgnored,
			Ecosystem: ecosystem,
			Tool:      tool.Name,
			Reason:    reason,
		})
		return
	}

	if !r.prober.ProbeExecutable(tool.Executable) {
		logger.Info().Str("executable", tool.Executable).Msg("Executable not found")
		result.Status = types.ToolUnavailable
		result.Reason = types.ReasonExecutableMissing
		r.summary.Tools = append(r.summary.Tools, result)
		r.reporter.Report(types.Event{
			Kind:      types.EventToolUnavailable,
			Ecosystem: ecosystem,
			Tool:      tool.Name,
			Reason:    types.ReasonExecutableMissing,
			Command:   tool.Executable,
		})
		return
	}

	result.Status = types.ToolProcessed
	r.reporter.Report(types.Event{Kind: types.EventToolProcessing, Ecosystem: ecosystem, Tool: tool.Name})

	for _, v := range tool.Env {
		if r.applyEnv(logger, ecosystem, tool.Name, v) {
			result.EnvApplied = append(result.EnvApplied, v.Key)
		}
	}
	for _, command := range tool.Commands {
		result.Commands = append(result.Commands, r.runCommand(logger, ecosystem, tool.Name, command))
	}

	r.summary.Tools = append(r.summary.Tools, result)
}

func (r *run) applyEnv(logger zerolog.Logger, ecosystem, tool string, v types.EnvVar) bool {
	event := types.Event{
		Kind:      types.EventEnvApplied,
		Ecosystem: ecosystem,
		Tool:      tool,
		Key:       v.Key,
		Value:     v.Value,
		DryRun:    r.dryRun,
	}

	if !r.dryRun {
		if err := r.scope.Apply(v.Key, v.Value); err != nil {
			logger.Info().Err(err).Str("key", v.Key).Msg("Could not set environment variable")
			event.Kind = types.EventEnvApplyFailed
			event.Error = err.Error()
			r.reporter.Report(event)
			return false
		}
	}

	r.summary.EnvApplied++
	r.reporter.Report(event)
	return true
}

func (r *run) runCommand(logger zerolog.Logger, ecosystem, tool, command string) types.CommandResult {
	if r.dryRun {
		outcome := types.Succeeded("", "", 0)
		r.summary.CommandsSucceeded++
		r.reporter.Report(types.Event{
			Kind:      types.EventCommandSucceeded,
			Ecosystem: ecosystem,
			Tool:      tool,
			Command:   command,
			Outcome:   &outcome,
			DryRun:    true,
		})
		return types.CommandResult{Command: command, Outcome: outcome}
	}

	outcome := r.executor.Run(command)
	kind := types.EventCommandSucceeded
	if outcome.Success {
		r.summary.CommandsSucceeded++
	} else {
		r.summary.CommandsFailed++
		kind = types.EventCommandFailed
		logger.Info().
			Str("command", command).
			Str("status", outcome.Describe()).
			Msg("Command failed")
	}

	r.reporter.Report(types.Event{
		Kind:      kind,
		Ecosystem: ecosystem,
		Tool:      tool,
		Command:   command,
		Outcome:   &outcome,
	})
	return types.CommandResult{Command: command, Outcome: outcome}
}
