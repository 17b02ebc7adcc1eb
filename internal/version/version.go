// Package version carries build information stamped in at link time:
//
//	-ldflags "-X github.com/bodo-run/stop-nagging/internal/version.Version=v1.2.3
//	          -X github.com/bodo-run/stop-nagging/internal/version.Commit=abc1234
//	          -X github.com/bodo-run/stop-nagging/internal/version.Date=2024-01-02"
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info is the build information of the running binary.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get returns the stamped build information. A binary built with plain
// `go install` has no ldflags, so the module version and VCS revision
// recorded by the toolchain fill the gaps.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	build, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	return info.fill(build)
}

func (i Info) fill(build *debug.BuildInfo) Info {
	if i.Version == "dev" && build.Main.Version != "" && build.Main.Version != "(devel)" {
		i.Version = build.Main.Version
	}
	for _, s := range build.Settings {
		switch {
		case s.Key == "vcs.revision" && i.Commit == "unknown":
			i.Commit = s.Value
			if len(i.Commit) > 12 {
				i.Commit = i.Commit[:12]
			}
		case s.Key == "vcs.time" && i.Date == "unknown":
			i.Date = s.Value
		}
	}
	return i
}

// String is the one-line form used by --version.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", i.Version, i.Commit, i.Date)
}
