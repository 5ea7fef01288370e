// Package version reports which tsgen build is running.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

// Release builds set these with -ldflags "-X ...".
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Date      string `json:"date,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go"`
	Platform  string `json:"platform"`
}

var current = sync.OnceValue(func() BuildInfo {
	bi := BuildInfo{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		fill(&bi, info)
	}
	return bi
})

// fill completes the fields left empty by the linker from the module and
// VCS metadata embedded by the go command.
func fill(bi *BuildInfo, info *debug.BuildInfo) {
	if bi.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		bi.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if bi.Commit == "" {
				bi.Commit = s.Value
			}
		case "vcs.time":
			if bi.Date == "" {
				bi.Date = s.Value
			}
		case "vcs.modified":
			bi.Modified = s.Value == "true"
		}
	}
	if len(bi.Commit) > 12 {
		bi.Commit = bi.Commit[:12]
	}
}

// Get returns the build information of the running binary.
func Get() BuildInfo { return current() }

// String renders bi on one line, for example
// "tsgen v0.3.0 (3f2a9c1d4e5b, dirty) go1.24.1 linux/amd64".
func (bi BuildInfo) String() string {
	rev := bi.Commit
	if rev == "" {
		rev = "unknown commit"
	}
	if bi.Modified {
		rev += ", dirty"
	}
	return fmt.Sprintf("tsgen %s (%s) %s %s", bi.Version, rev, bi.GoVersion, bi.Platform)
}

// Short returns the version alone.
func Short() string { return Get().Version }
