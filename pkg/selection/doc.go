// Package selection decides which ecosystems and tools take part in a run.
//
// Matching is case-insensitive and ignores blank entries. An excluded
// ecosystem is never processed, even when it is also explicitly selected.
package selection
