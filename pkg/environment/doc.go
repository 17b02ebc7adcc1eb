// Package environment confines all writes to the process environment.
//
// A Mutator applies a value and hands back the Prior state of the key; a
// Scope collects those priors and restores them in reverse order when it
// is released:
//
//	scope := environment.NewScope(environment.NewMutator(environment.OS{}))
//	defer scope.Restore()
//	scope.Apply("NEXT_TELEMETRY_DISABLED", "1")
//
// Restore runs at most once per scope, so deferring it and calling it
// explicitly is safe.
package environment
