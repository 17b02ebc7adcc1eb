// Package testutil provides fakes and helpers for testing stop-nagging
// components.
//
// Key components:
//   - Journal: ordered record of side effects shared across fakes
//   - MapEnv: in-memory environment table
//   - FakeProber, FakeExecutor: scripted collaborators for the engine
//   - RecordingReporter: captures reported events
//   - RunWithTimeout, InstallTools: bounded command runs for install hints
//
// Usage guidelines:
//   - Engine tests should use the fakes; only a few scenario tests touch
//     the real shell and process environment
//   - Test configurations are built inline with the helpers in configs.go
package testutil
