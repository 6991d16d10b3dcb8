package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetFromBuild(t *testing.T) {
	original := Version
	t.Cleanup(func() { Version = original })

	tests := []struct {
		name  string
		build string
		want  string
	}{
		{"empty keeps ldflags value", "", "dev"},
		{"devel keeps ldflags value", "(devel)", "dev"},
		{"module version", "v1.2.3", "v1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = "dev"
			SetFromBuild(tt.build)
			require.Equal(t, tt.want, Version)
		})
	}
}

func TestInfo_String(t *testing.T) {
	req := require.New(t)
	info := Info{
		Version:   "v1.2.0",
		GitCommit: "abc1234",
		GitTag:    "unknown",
		BuildDate: "2026-10-01",
		GoVersion: "go1.24.0",
		Compiler:  "gc",
		Platform:  "darwin/arm64",
	}

	req.Equal("sig v1.2.0", info.Short())
	req.Equal("sig v1.2.0 (Swift imports grouper)\n"+
		"  commit: abc1234\n"+
		"  built:  2026-10-01\n"+
		"  go:     go1.24.0 gc darwin/arm64", info.String())

	info.GitTag = "v1.2.0"
	req.Contains(info.String(), "  tag:    v1.2.0\n")
}

func TestGet(t *testing.T) {
	req := require.New(t)
	info := Get()

	req.Equal(Version, info.Version)
	req.True(strings.HasPrefix(info.String(), "sig "+info.Version+" (Swift imports grouper)\n"))
	req.Contains(info.String(), info.GoVersion)
}
