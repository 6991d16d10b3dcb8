package version

import (
	"fmt"
	"runtime"
	"strings"
)

var (
	// These variables are set at build time using ldflags
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = "unknown"
	BuildDate = "unknown"
)

// Info holds version information
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	GitTag    string `json:"gitTag"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Compiler  string `json:"compiler"`
	Platform  string `json:"platform"`
}

// SetFromBuild records the module version from the build info, keeping the
// ldflags value for development builds
func SetFromBuild(v string) {
	if v != "" && v != "(devel)" {
		Version = v
	}
}

// Get returns version information
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		GitTag:    GitTag,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Compiler:  runtime.Compiler,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Short returns the program name and version, e.g. "sig v1.2.0"
func (i Info) Short() string {
	return "sig " + i.Version
}

// String returns the version banner printed by sig --version
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (Swift imports grouper)\n", i.Short())
	fmt.Fprintf(&b, "  commit: %s\n", i.GitCommit)
	if i.GitTag != "" && i.GitTag != "unknown" {
		fmt.Fprintf(&b, "  tag:    %s\n", i.GitTag)
	}
	fmt.Fprintf(&b, "  built:  %s\n", i.BuildDate)
	fmt.Fprintf(&b, "  go:     %s %s %s", i.GoVersion, i.Compiler, i.Platform)
	return b.String()
}
