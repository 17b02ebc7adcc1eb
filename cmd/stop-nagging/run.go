package main

import (
	"fmt"

	"github.com/bodo-run/stop-nagging/pkg/config"
	"github.com/bodo-run/stop-nagging/pkg/engine"
	"github.com/bodo-run/stop-nagging/pkg/logging"
	"github.com/bodo-run/stop-nagging/pkg/platform"
	"github.com/bodo-run/stop-nagging/pkg/selection"
	"github.com/bodo-run/stop-nagging/pkg/ui"
	"github.com/spf13/cobra"
)

// runNagging loads the tools document and walks it once
func runNagging(cmd *cobra.Command, settings *config.Settings) error {
	logger := logging.GetLogger("cmd.run")
	errOut := cmd.ErrOrStderr()

	renderer, err := ui.NewRenderer(settings.Format, cmd.OutOrStdout(), ui.Options{
		Verbose: settings.Verbose > 0,
		ErrOut:  errOut,
	})
	if err != nil {
		return err
	}

	cfg, fallbackErr, err := config.LoadWithFallback(settings.Yaml)
	if fallbackErr != nil {
		_ = renderer.RenderWarning(fmt.Sprintf(MsgYamlLoadFailed, fallbackErr))
		fmt.Fprintln(errOut, MsgFallingBack)
	}
	if err != nil {
		return fmt.Errorf(MsgErrNoConfig, err)
	}

	filter := selection.NewFilter(selection.Options{
		Ecosystems:        settings.Ecosystems,
		ExcludeEcosystems: settings.IgnoreEcosystems,
		IgnoreTools:       settings.IgnoreTools,
	})
	for _, name := range filter.UnknownEcosystems(cfg) {
		_ = renderer.RenderWarning(fmt.Sprintf(MsgUnknownEcosystem, name))
	}

	prober, err := platform.NewCachingProber(platform.NewShellProber(platform.DefaultShell()), settings.ProbeCacheSize)
	if err != nil {
		return err
	}

	eng, err := engine.New(engine.Options{
		Config:   cfg,
		Filter:   filter,
		Prober:   prober,
		Reporter: renderer,
		DryRun:   settings.DryRun,
	})
	if err != nil {
		return err
	}

	summary := eng.Run()
	logger.Info().
		Str("runID", summary.RunID).
		Int("ecosystems", summary.EcosystemsProcessed()).
		Int("commandsFailed", summary.CommandsFailed).
		Msg("Run completed")

	return renderer.RenderSummary(summary)
}
