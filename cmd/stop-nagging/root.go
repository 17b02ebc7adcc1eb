package main

import (
	"fmt"

	"github.com/bodo-run/stop-nagging/cmd/stop-nagging/commands/genconfig"
	"github.com/bodo-run/stop-nagging/cmd/stop-nagging/commands/list"
	"github.com/bodo-run/stop-nagging/internal/version"
	"github.com/bodo-run/stop-nagging/pkg/config"
	"github.com/bodo-run/stop-nagging/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/pflag"
)

// settingFlags maps flag names to their settings keys
var settingFlags = map[string]string{
	"yaml":              "yaml",
	"ecosystems":        "ecosystems",
	"ignore-ecosystems": "ignore_ecosystems",
	"ignore-tools":      "ignore_tools",
	"verbose":           "verbose",
	"format":            "format",
	"dry-run":           "dry_run",
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var settings *config.Settings
	currentSettings := func() *config.Settings { return settings }

	rootCmd := &cobra.Command{
		Use:     "stop-nagging",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Get().String(),
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.LoadSettings(changedFlags(cmd.Flags()))
			if err != nil {
				return fmt.Errorf(MsgErrLoadSettings, err)
			}
			settings = loaded

			logging.SetupLoggerWithWriter(settings.Verbose, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNagging(cmd, settings)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	var (
		yamlPath  string
		verbosity int
		format    string
	)
	rootCmd.PersistentFlags().StringVarP(&yamlPath, "yaml", "y", "", MsgFlagYaml)
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&format, "format", "auto", MsgFlagFormat)

	// Run flags
	var (
		ignoreTools      []string
		ecosystems       []string
		ignoreEcosystems []string
		dryRun           bool
	)
	rootCmd.Flags().StringSliceVar(&ignoreTools, "ignore-tools", nil, MsgFlagIgnoreTools)
	rootCmd.Flags().StringSliceVar(&ecosystems, "ecosystems", nil, MsgFlagEcosystems)
	rootCmd.Flags().StringSliceVar(&ignoreEcosystems, "ignore-ecosystems", nil, MsgFlagIgnoreEcosystems)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(list.NewCommand(currentSettings))
	rootCmd.AddCommand(genconfig.NewCommand())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// changedFlags returns the settings given explicitly on the command line.
// Flags left at their defaults do not override lower settings layers.
func changedFlags(flags *pflag.FlagSet) map[string]interface{} {
	out := map[string]interface{}{}
	flags.Visit(func(f *pflag.Flag) {
		key, ok := settingFlags[f.Name]
		if !ok {
			return
		}
		if slice, ok := f.Value.(pflag.SliceValue); ok {
			out[key] = slice.GetSlice()
			return
		}
		out[key] = f.Value.String()
	})
	return out
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			info := version.Get()
			fmt.Fprintf(out, MsgVersionFormat, info.Version)
			fmt.Fprintf(out, MsgVersionCommit, info.Commit)
			fmt.Fprintf(out, MsgVersionDate, info.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(stop-nagging completion bash)

Zsh:
  $ stop-nagging completion zsh > "${fpath[1]}/_stop-nagging"

Fish:
  $ stop-nagging completion fish | source

PowerShell:
  PS> stop-nagging completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "STOP-NAGGING",
				Section: "1",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManPagesGenerated, dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", MsgFlagManDir)
	return cmd
}
