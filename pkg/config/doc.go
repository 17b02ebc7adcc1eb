// Package config loads the two inputs of a run.
//
// The tools document is YAML: ecosystems mapped to tools, decoded in
// declared order into types.Config. A default document is embedded in the
// binary and used whenever no usable user document is given.
//
// Settings are the defaults for command-line flags, layered with koanf:
//
//  1. built-in defaults
//  2. config.toml in the config directory ($XDG_CONFIG_HOME/stop-nagging,
//     or $STOP_NAGGING_CONFIG_DIR)
//  3. STOP_NAGGING_* environment variables
//  4. flags given explicitly on the command line
//
// Later layers win. List values may be given as comma-separated strings.
package config
