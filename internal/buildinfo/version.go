// Package buildinfo resolves the version string printed by `uom --version` and
// stamped into batch reports.
package buildinfo

import (
	"bytes"
	"os/exec"
	"runtime/debug"
	"strings"
)

var (
	// Set these at build time with -ldflags "-X 'github.com/idlab-discover/uom-cli/internal/buildinfo.Version=...' -X '...Commit=...'"
	Version = ""
	Commit  = ""
)

var readBuildInfo = debug.ReadBuildInfo

// Resolve returns the version reported by `uom --version` and written into batch
// reports.
func Resolve() string {
	// 1) release builds stamp the version with ldflags
	if Version != "" && Version != "dev" {
		return Version
	}
	// 2) `go install module@version` records it in the build info
	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	// 3) running from a checkout: nearest tag, or the short hash
	if d := gitDescribe(); d != "" {
		return d
	}
	// 4) a commit stamped without a version
	if Commit != "" {
		return "commit-" + Commit
	}
	return "devel"
}

// gitDescribe describes the working tree's HEAD, falling back to the short commit
// hash when there is no tag. It returns "" outside a repository or without git.
func gitDescribe() string {
	out, err := exec.Command("git", "describe", "--tags", "--always", "--dirty").Output()
	if err != nil {
		if short, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output(); err == nil {
			return strings.TrimSpace(string(short))
		}
		return ""
	}
	return string(bytes.TrimSpace(out))
}
