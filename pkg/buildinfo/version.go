// Package buildinfo reports the version axisticks was built from.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/axisticks/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/axisticks/pkg/buildinfo.Commit=$(git rev-parse HEAD)" ./cmd/axisticks
//
// Development builds fall back to the module information embedded by the
// Go toolchain.
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"sync"
)

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the VCS revision.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

var fillOnce sync.Once

// fill copies VCS settings recorded by the toolchain into variables that
// ldflags left at their defaults.
func fill() {
	fillOnce.Do(func() {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			Version = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if Commit == "none" {
					Commit = s.Value
				}
			case "vcs.time":
				if Date == "unknown" {
					Date = s.Value
				}
			}
		}
	})
}

// ShortCommit returns the first 7 characters of Commit.
func ShortCommit() string {
	fill()
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}

// String returns a one-line summary used in server headers and logs.
func String() string {
	fill()
	return fmt.Sprintf("axisticks %s (%s, %s)", Version, ShortCommit(), Date)
}

// Template returns the version template for cobra.
func Template() string {
	fill()
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
