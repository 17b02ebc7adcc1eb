//go:build windows

package testutil

import "os/exec"

// killGroupOnCancel leaves the default cancellation in place; WaitDelay
// still bounds the wait for pipes held by grandchildren.
func killGroupOnCancel(cmd *exec.Cmd) {}
