package main

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionFromBuildInfo(t *testing.T) {
	tests := []struct {
		name        string
		info        debug.BuildInfo
		wantVersion string
		wantCommit  string
		wantDate    string
	}{
		{
			name:        "empty build info",
			wantVersion: "dev",
			wantCommit:  "unknown",
			wantDate:    "unknown",
		},
		{
			name: "go install of a tagged module",
			info: debug.BuildInfo{
				Main: debug.Module{Version: "v0.3.1"},
			},
			wantVersion: "v0.3.1",
			wantCommit:  "unknown",
			wantDate:    "unknown",
		},
		{
			name: "local build with vcs stamping",
			info: debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc1234def5678"},
					{Key: "vcs.time", Value: "2026-01-15T10:00:00Z"},
				},
			},
			wantVersion: "dev",
			wantCommit:  "abc1234",
			wantDate:    "2026-01-15T10:00:00Z",
		},
		{
			name: "dirty working tree",
			info: debug.BuildInfo{
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc1234def5678"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			wantVersion: "dev",
			wantCommit:  "abc1234-dirty",
			wantDate:    "unknown",
		},
		{
			name: "short revision is ignored",
			info: debug.BuildInfo{
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc"},
				},
			},
			wantVersion: "dev",
			wantCommit:  "unknown",
			wantDate:    "unknown",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, c, d := versionFromBuildInfo(&tc.info)
			assert.Equal(t, tc.wantVersion, v)
			assert.Equal(t, tc.wantCommit, c)
			assert.Equal(t, tc.wantDate, d)
		})
	}
}
