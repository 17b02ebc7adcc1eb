package environment

import (
	"os"

	"github.com/bodo-run/stop-nagging/pkg/errors"
	"github.com/bodo-run/stop-nagging/pkg/logging"
	"github.com/rs/zerolog"
)

// Environment is a mutable table of environment variables.
type Environment interface {
	Lookup(key string) (string, bool)
	Set(key, value string) error
	Unset(key string) error
}

// OS is the process environment.
type OS struct{}

// Lookup implements Environment.
func (OS) Lookup(key string) (string, bool) { return os.LookupEnv(key) }

// Set implements Environment.
func (OS) Set(key, value string) error { return os.Setenv(key, value) }

// Unset implements Environment.
func (OS) Unset(key string) error { return os.Unsetenv(key) }

// Prior is the state of a key captured just before it was overwritten.
type Prior struct {
	Key     string
	Value   string
	Present bool
}

// Mutator overwrites variables and restores their prior state.
type Mutator struct {
	env    Environment
	logger zerolog.Logger
}

// NewMutator creates a mutator over env.
func NewMutator(env Environment) *Mutator {
	return &Mutator{
		env:    env,
		logger: logging.GetLogger("environment"),
	}
}

// Apply records the current state of key and sets it to value. When the
// assignment is rejected nothing changed, so the returned error carries no
// prior to restore.
func (m *Mutator) Apply(key, value string) (Prior, error) {
	old, present := m.env.Lookup(key)
	prior := Prior{Key: key, Value: old, Present: present}

	if err := m.env.Set(key, value); err != nil {
		return Prior{}, errors.Wrapf(err, errors.ErrEnvApply, "cannot set %s", key).
			WithDetail("key", key)
	}

	m.logger.Trace().
		Str("key", key).
		Bool("wasSet", present).
		Msg("Applied environment variable")
	return prior, nil
}

// Restore puts key back the way Apply found it: the old value, or absent.
// Failures are logged; the environment table is treated as infallible.
func (m *Mutator) Restore(p Prior) {
	var err error
	if p.Present {
		err = m.env.Set(p.Key, p.Value)
	} else {
		err = m.env.Unset(p.Key)
	}
	if err != nil {
		m.logger.Error().
			Err(errors.Wrapf(err, errors.ErrEnvRestore, "cannot restore %s", p.Key)).
			Str("key", p.Key).
			Msg("Failed to restore environment variable")
		return
	}

	m.logger.Trace().
		Str("key", p.Key).
		Bool("unset", !p.Present).
		Msg("Restored environment variable")
}
