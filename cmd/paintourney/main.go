// Package main provides the CLI entry point for paintourney.
package main

import (
	"os"
	"runtime/debug"

	"github.com/alexander-akhmetov/paintourney/internal/tui"
)

// Version information set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			version, commit, date = versionFromBuildInfo(info)
		}
	}
	tui.SetVersionInfo(version, commit, date)
	if err := tui.Execute(); err != nil {
		os.Exit(1)
	}
}

// versionFromBuildInfo fills version details for binaries built without
// ldflags, e.g. by go install.
func versionFromBuildInfo(info *debug.BuildInfo) (v, c, d string) {
	v = "dev"
	if mv := info.Main.Version; mv != "" && mv != "(devel)" {
		v = mv
	}

	var revision string
	dirty := false
	c, d = "unknown", "unknown"
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			if s.Value != "" {
				d = s.Value
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if len(revision) >= 7 {
		c = revision[:7]
		if dirty {
			c += "-dirty"
		}
	}
	return v, c, d
}
