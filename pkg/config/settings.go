package config

import (
	"os"
	"strings"

	"github.com/bodo-run/stop-nagging/pkg/errors"
	"github.com/bodo-run/stop-nagging/pkg/logging"
	"github.com/bodo-run/stop-nagging/pkg/paths"
	"github.com/bodo-run/stop-nagging/pkg/ui"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables that override settings
const EnvPrefix = "STOP_NAGGING_"

// Settings are the defaults for every command-line flag.
type Settings struct {
	// Yaml is the path of a tools document; empty means the embedded default
	Yaml             string    `koanf:"yaml" toml:"yaml"`
	Ecosystems       []string  `koanf:"ecosystems" toml:"ecosystems"`
	IgnoreEcosystems []string  `koanf:"ignore_ecosystems" toml:"ignore_ecosystems"`
	IgnoreTools      []string  `koanf:"ignore_tools" toml:"ignore_tools"`
	Verbose          int       `koanf:"verbose" toml:"verbose"`
	Format           ui.Format `koanf:"format" toml:"format"`
	DryRun           bool      `koanf:"dry_run" toml:"dry_run"`
	ProbeCacheSize   int       `koanf:"probe_cache_size" toml:"probe_cache_size"`
}

// settingKeys are the keys understood in every layer. Environment variables
// that map to anything else (such as STOP_NAGGING_CONFIG_DIR) are ignored.
var settingKeys = map[string]bool{
	"yaml":              true,
	"ecosystems":        true,
	"ignore_ecosystems": true,
	"ignore_tools":      true,
	"verbose":           true,
	"format":            true,
	"dry_run":           true,
	"probe_cache_size":  true,
}

// DefaultSettings returns the built-in settings layer.
func DefaultSettings() map[string]interface{} {
	return map[string]interface{}{
		"yaml":              "",
		"ecosystems":        []string{},
		"ignore_ecosystems": []string{},
		"ignore_tools":      []string{},
		"verbose":           0,
		"format":            "auto",
		"dry_run":           false,
		"probe_cache_size":  256,
	}
}

// LoadSettings builds Settings from all layers. flags holds only the flags
// the user set explicitly, keyed like the settings file.
func LoadSettings(flags map[string]interface{}) (*Settings, error) {
	logger := logging.GetLogger("config.settings")
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(confmap.Provider(DefaultSettings(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrSettingsLoad, "failed to load default settings")
	}

	// 2. Settings file, if it exists
	settingsPath := paths.SettingsFile()
	if _, err := os.Stat(settingsPath); err == nil {
		if err := k.Load(file.Provider(settingsPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrSettingsLoad, "failed to load settings from %s", settingsPath).
				WithDetail("path", settingsPath)
		}
		logger.Debug().Str("path", settingsPath).Msg("Loaded settings file")
	}

	// 3. Environment variables
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if !settingKeys[key] {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSettingsLoad, "failed to load settings from environment")
	}

	// 4. Explicit flags
	if len(flags) > 0 {
		if err := k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrSettingsLoad, "failed to load flag settings")
		}
	}

	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrSettingsLoad, "failed to decode settings")
	}

	settings.Ecosystems = cleanList(settings.Ecosystems)
	settings.IgnoreEcosystems = cleanList(settings.IgnoreEcosystems)
	settings.IgnoreTools = cleanList(settings.IgnoreTools)
	return &settings, nil
}

// cleanList splits comma-joined entries left over from repeated flags and
// drops blanks.
func cleanList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
