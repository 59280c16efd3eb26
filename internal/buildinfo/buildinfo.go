// Package buildinfo holds the version stamped in with -ldflags -X.
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String describes the binary. Unstamped builds installed with go install
// report the module version instead of "dev".
func String() string {
	v := Version
	if v == "dev" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			v = bi.Main.Version
		}
	}
	return fmt.Sprintf("rootplot %s (commit=%s, date=%s, %s)", v, Commit, Date, runtime.Version())
}
