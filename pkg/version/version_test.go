package version_test

import (
	"runtime"
	"testing"

	// Packages
	version "github.com/mutablelogic/go-wpmcp/pkg/version"
	assert "github.com/stretchr/testify/assert"
)

func Test_version_001(t *testing.T) {
	// A tag takes precedence over a branch
	assert := assert.New(t)
	tag, branch := version.GitTag, version.GitBranch
	t.Cleanup(func() { version.GitTag, version.GitBranch = tag, branch })

	version.GitTag, version.GitBranch = "v1.2.3", "main"
	assert.Equal("v1.2.3", version.Version())
	version.GitTag = ""
	assert.Equal("main", version.Version())
	version.GitBranch = ""
	assert.NotEmpty(version.Version())
}

func Test_version_002(t *testing.T) {
	// Build describes the running binary
	assert := assert.New(t)
	build := version.Get("wpmcp")
	assert.Equal("wpmcp", build.Name)
	assert.Equal(runtime.Version(), build.Compiler)
	assert.Equal(runtime.GOOS+"/"+runtime.GOARCH, build.Platform)
	assert.Contains(build.String(), "wpmcp")
}
