package genconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bodo-run/stop-nagging/pkg/config"
	"github.com/bodo-run/stop-nagging/pkg/errors"
	"github.com/bodo-run/stop-nagging/pkg/logging"
	"github.com/bodo-run/stop-nagging/pkg/paths"
	"github.com/spf13/cobra"
)

// NewCommand creates the genconfig command
func NewCommand() *cobra.Command {
	var (
		settings bool
		write    bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write && !settings {
				return errors.New(errors.ErrInvalidInput, MsgErrWriteNeeds)
			}
			if !settings {
				_, err := cmd.OutOrStdout().Write(config.DefaultToolsYAML())
				return err
			}

			content, err := config.GenerateSettingsContent()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "cannot render settings template")
			}
			if !write {
				_, err = fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path := paths.SettingsFile()
			if err := writeNew(path, content); err != nil {
				return err
			}
			logger := logging.GetLogger("cmd.genconfig")
			logger.Info().Str("path", path).Msg("Settings template written")
			fmt.Fprintf(cmd.OutOrStdout(), MsgWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&settings, "settings", false, MsgFlagSettings)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

// writeNew creates path with content, refusing to replace an existing file
func writeNew(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrInvalidInput, MsgErrAlreadyThere, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot write %s", path)
	}
	return nil
}
