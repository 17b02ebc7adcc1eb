package testutil

import "fmt"

// Journal records side effects in the order they happen. Fakes sharing a
// journal let a test assert the interleaving of env writes and commands.
type Journal struct {
	entries []string
}

// Record appends a formatted entry.
func (j *Journal) Record(format string, args ...interface{}) {
	if j == nil {
		return
	}
	j.entries = append(j.entries, fmt.Sprintf(format, args...))
}

// Entries returns a copy of everything recorded so far.
func (j *Journal) Entries() []string {
	if j == nil {
		return nil
	}
	out := make([]string, len(j.entries))
	copy(out, j.entries)
	return out
}

// Reset drops all entries.
func (j *Journal) Reset() {
	j.entries = nil
}
