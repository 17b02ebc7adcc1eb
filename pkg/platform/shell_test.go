package platform_test

import (
	"testing"

	"github.com/bodo-run/stop-nagging/pkg/platform"
	"github.com/stretchr/testify/assert"
)

func TestShellFor(t *testing.T) {
	posix := platform.ShellFor("linux")
	assert.Equal(t, "sh", posix.Program)
	assert.Equal(t, []string{"-c"}, posix.Args)
	assert.False(t, posix.Windows)

	win := platform.ShellFor("windows")
	assert.Equal(t, "cmd", win.Program)
	assert.Equal(t, []string{"/C"}, win.Args)
	assert.True(t, win.Windows)
}

func TestShellCommand(t *testing.T) {
	cmd := platform.ShellFor("darwin").Command("echo hi | tr a-z A-Z")
	assert.Equal(t, []string{"sh", "-c", "echo hi | tr a-z A-Z"}, cmd.Args)
}

func TestLookupCommand(t *testing.T) {
	tests := []struct {
		name       string
		goos       string
		executable string
		want       string
	}{
		{"posix plain", "linux", "npm", "command -v 'npm'"},
		{"posix quote", "linux", "it's", `command -v 'it'\''s'`},
		{"posix injection stays literal", "linux", "npm; rm -rf /", "command -v 'npm; rm -rf /'"},
		{"windows plain", "windows", "npm", "where npm"},
		{"windows spaces", "windows", "my tool", `where "my tool"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, platform.ShellFor(tt.goos).LookupCommand(tt.executable))
		})
	}
}
