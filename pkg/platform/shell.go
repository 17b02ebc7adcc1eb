package platform

import (
	"os/exec"
	"runtime"
	"strings"
)

// Shell runs command strings through a platform shell.
type Shell struct {
	Program string
	Args    []string
	Windows bool
}

// DefaultShell returns the shell for the current platform.
func DefaultShell() Shell {
	return ShellFor(runtime.GOOS)
}

// ShellFor returns the shell used on the given GOOS.
func ShellFor(goos string) Shell {
	if goos == "windows" {
		return Shell{Program: "cmd", Args: []string{"/C"}, Windows: true}
	}
	return Shell{Program: "sh", Args: []string{"-c"}}
}

// Command builds an exec.Cmd that runs command through the shell.
func (s Shell) Command(command string) *exec.Cmd {
	args := make([]string, 0, len(s.Args)+1)
	args = append(args, s.Args...)
	args = append(args, command)
	return exec.Command(s.Program, args...)
}

// LookupCommand returns the shell command that succeeds iff executable is
// on the search path.
func (s Shell) LookupCommand(executable string) string {
	if s.Windows {
		if strings.ContainsAny(executable, " \t") {
			return `where "` + executable + `"`
		}
		return "where " + executable
	}
	return "command -v " + QuotePOSIX(executable)
}

// QuotePOSIX single-quotes s for sh.
func QuotePOSIX(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
