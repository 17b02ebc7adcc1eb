// Package types defines the data shared across stop-nagging components.
//
// The configuration model (Config, Ecosystem, Tool, EnvVar) is plain data
// decoded from the tools document; nothing in this package runs commands or
// touches the process environment. The remaining types describe what a run
// observed: skip reasons, command outcomes, events streamed to the output
// layer and the summary returned by the engine.
package types
