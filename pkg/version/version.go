package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Build describes the running binary
type Build struct {
	Name     string `json:"name" yaml:"name"`
	Version  string `json:"version" yaml:"version"`
	Tag      string `json:"tag,omitempty" yaml:"tag,omitempty"`
	Branch   string `json:"branch,omitempty" yaml:"branch,omitempty"`
	Source   string `json:"source,omitempty" yaml:"source,omitempty"`
	Hash     string `json:"hash,omitempty" yaml:"hash,omitempty"`
	Time     string `json:"build_time,omitempty" yaml:"build_time,omitempty"`
	Modified bool   `json:"modified,omitempty" yaml:"modified,omitempty"`
	Compiler string `json:"compiler" yaml:"compiler"`
	Platform string `json:"platform" yaml:"platform"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set with -ldflags at build time
var (
	GitTag    string
	GitBranch string
)

// Number of characters of a revision used as a version
const shortHash = 12

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the tag, branch or revision the binary was built from,
// or "dev"
func Version() string {
	if GitTag != "" {
		return GitTag
	}
	if GitBranch != "" {
		return GitBranch
	}
	if hash := setting("vcs.revision"); hash != "" {
		return hash[:min(len(hash), shortHash)]
	}
	return "dev"
}

// Get returns the build description for the named executable
func Get(name string) Build {
	build := Build{
		Name:     name,
		Version:  Version(),
		Tag:      GitTag,
		Branch:   GitBranch,
		Hash:     setting("vcs.revision"),
		Time:     setting("vcs.time"),
		Modified: setting("vcs.modified") == "true",
		Compiler: runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		build.Source = info.Main.Path
	}
	return build
}

func (b Build) String() string {
	return fmt.Sprintf("%s %s (%s, %s)", b.Name, b.Version, b.Compiler, b.Platform)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func setting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}
