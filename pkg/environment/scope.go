package environment

import "github.com/bodo-run/stop-nagging/pkg/errors"

// Scope pairs every Apply made through it with exactly one restore.
type Scope struct {
	mutator  *Mutator
	backups  []Prior
	restored bool

	// OnRestore, when set, observes each prior as it is restored
	OnRestore func(Prior)
}

// NewScope opens a scope over m.
func NewScope(m *Mutator) *Scope {
	return &Scope{mutator: m}
}

// Apply sets key to value and remembers how to undo it.
func (s *Scope) Apply(key, value string) error {
	if s.restored {
		return errors.Newf(errors.ErrEnvApply, "scope already restored, refusing to set %s", key)
	}
	prior, err := s.mutator.Apply(key, value)
	if err != nil {
		return err
	}
	s.backups = append(s.backups, prior)
	return nil
}

// Len returns the number of pending restores.
func (s *Scope) Len() int {
	return len(s.backups)
}

// Restore reverts every Apply in reverse order, so a key applied several
// times ends at its state from before the first Apply. Later calls are no-ops.
func (s *Scope) Restore() int {
	if s.restored {
		return 0
	}
	s.restored = true

	n := len(s.backups)
	for i := n - 1; i >= 0; i-- {
		s.mutator.Restore(s.backups[i])
		if s.OnRestore != nil {
			s.OnRestore(s.backups[i])
		}
	}
	s.backups = nil
	return n
}
