package config

import (
	"os"

	"github.com/bodo-run/stop-nagging/pkg/errors"
	"github.com/bodo-run/stop-nagging/pkg/logging"
	"github.com/bodo-run/stop-nagging/pkg/paths"
	"github.com/bodo-run/stop-nagging/pkg/types"
	"gopkg.in/yaml.v3"
)

// Parse decodes and validates a tools document.
func Parse(data []byte) (*types.Config, error) {
	var cfg types.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot parse tools document")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads and parses the tools document at path. A leading ~ is
// expanded to the home directory.
func LoadFile(path string) (*types.Config, error) {
	path = paths.ExpandHome(path)

	data, err := os.ReadFile(path)
	if err != nil {
		code := errors.ErrConfigLoad
		if os.IsNotExist(err) {
			code = errors.ErrNotFound
		}
		return nil, errors.Wrapf(err, code, "cannot read tools file %s", path).
			WithDetail("path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "invalid tools file %s", path).
			WithDetail("path", path)
	}
	return cfg, nil
}

// LoadDefault parses the embedded default document.
func LoadDefault() (*types.Config, error) {
	cfg, err := Parse(defaultTools)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "embedded default configuration is unusable")
	}
	return cfg, nil
}

// LoadWithFallback loads the document at path, or the embedded default when
// path is empty. When a user document cannot be used, the default is
// returned together with the reason in fallbackErr. err is only set when
// no usable configuration exists at all.
func LoadWithFallback(path string) (cfg *types.Config, fallbackErr error, err error) {
	logger := logging.GetLogger("config")

	if path != "" {
		cfg, fallbackErr = LoadFile(path)
		if fallbackErr == nil {
			logger.Debug().
				Str("path", path).
				Int("ecosystems", len(cfg.Ecosystems)).
				Msg("Loaded tools file")
			return cfg, nil, nil
		}
		logger.Info().Err(fallbackErr).Str("path", path).Msg("Falling back to default configuration")
	}

	cfg, err = LoadDefault()
	if err != nil {
		return nil, fallbackErr, err
	}
	return cfg, fallbackErr, nil
}
