package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFill(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "3f2a9c1d4e5b6a7980"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	bi := BuildInfo{Version: "dev"}
	fill(&bi, info)
	assert.Equal(t, BuildInfo{
		Version:  "v0.3.0",
		Commit:   "3f2a9c1d4e5b",
		Date:     "2026-10-01T12:00:00Z",
		Modified: true,
	}, bi)

	bi = BuildInfo{Version: "v1.0.0", Commit: "abc1234", Date: "2026-01-01"}
	fill(&bi, info)
	assert.Equal(t, "v1.0.0", bi.Version, "linker values win")
	assert.Equal(t, "abc1234", bi.Commit)
	assert.Equal(t, "2026-01-01", bi.Date)

	bi = BuildInfo{Version: "dev"}
	fill(&bi, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	assert.Equal(t, "dev", bi.Version)
}

func TestString(t *testing.T) {
	bi := BuildInfo{Version: "v0.3.0", Commit: "3f2a9c1d4e5b", Modified: true, GoVersion: "go1.24.1", Platform: "linux/amd64"}
	assert.Equal(t, "tsgen v0.3.0 (3f2a9c1d4e5b, dirty) go1.24.1 linux/amd64", bi.String())

	bi = BuildInfo{Version: "dev", GoVersion: "go1.24.1", Platform: "linux/amd64"}
	assert.Equal(t, "tsgen dev (unknown commit) go1.24.1 linux/amd64", bi.String())
}

func TestGet(t *testing.T) {
	bi := Get()
	assert.Equal(t, runtime.Version(), bi.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, bi.Platform)
	assert.Equal(t, bi.Version, Short())
}
