// Package compileinfo reports the VCS state a binary was built from, so a
// matrix produced months ago can be traced back to the exact commit.
package compileinfo

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
)

// Stamp summarizes the build: main package path, Go version, commit, commit
// time, and whether the tree was dirty. Fields are empty when the binary was
// built outside version control (e.g. go run on a plain directory).
func Stamp() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(no build info recorded)"
	}

	commit, commitTime, modified := "(unknown)", "(unknown)", ""
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.time":
			commitTime = s.Value
		case "vcs.modified":
			if s.Value == "true" {
				modified = " Files in the repo were modified after that commit."
			}
		}
	}

	b := strings.Builder{}
	fmt.Fprintf(&b, "This %s binary was built with %s at commit %s at time %s.%s", info.Path, info.GoVersion, commit, commitTime, modified)

	return b.String()
}

func PrintToStdErr() {
	fmt.Fprintln(os.Stderr, Stamp())
}
