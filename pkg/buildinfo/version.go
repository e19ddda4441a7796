// Package buildinfo reports which gwsumm build produced a page.
//
// Release builds stamp the variables with ldflags:
//
//	go build -ldflags "-X github.com/duncanmmacleod/gwsumm/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/duncanmmacleod/gwsumm/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/duncanmmacleod/gwsumm/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Development builds fall back to the VCS metadata embedded by the Go
// toolchain, so `gwsumm --version` stays useful without a release pipeline.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Set via ldflags; see the package comment.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func init() {
	if Commit != "none" {
		return
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			Commit = s.Value
			if len(Commit) > 12 {
				Commit = Commit[:12]
			}
		case "vcs.time":
			Date = s.Value
		}
	}
}

// String returns a one-line build description for page footers.
func String() string {
	return fmt.Sprintf("gwsumm %s (%s, %s)", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
