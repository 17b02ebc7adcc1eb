// Package engine walks a tools configuration and applies it to the process.
//
// A run visits ecosystems and their tools in declared order. For each tool
// that survives selection and whose executable is on the search path, the
// engine sets the tool's environment variables and then runs its commands.
// Every variable set during the run is restored, in reverse order, before
// Run returns, including when a collaborator panics.
//
// The engine reports progress as types.Event values through a Reporter and
// returns a types.RunSummary. It never fails: unavailable tools, failed
// commands and rejected assignments are reported and the walk continues.
package engine
