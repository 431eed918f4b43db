package buildinfo

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"testing"
)

// writeFakeGit puts an executable "git" script into a temp dir and returns the dir.
func writeFakeGit(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "git"), []byte(content), 0o755); err != nil {
		t.Fatalf("writeFakeGit: %v", err)
	}
	return dir
}

func withGlobals(t *testing.T, version, commit string) {
	t.Helper()
	origVersion, origCommit, origRead := Version, Commit, readBuildInfo
	t.Cleanup(func() {
		Version, Commit, readBuildInfo = origVersion, origCommit, origRead
	})
	Version, Commit = version, commit
	readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		noGit   bool
		want    string
	}{
		{name: "ldflags priority", version: "1.2.3-ldflags", want: "1.2.3-ldflags"},
		{name: "commit fallback (no git)", commit: "deadbeef", noGit: true, want: "commit-deadbeef"},
		{name: "devel fallback", noGit: true, want: "devel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withGlobals(t, tt.version, tt.commit)
			if tt.noGit {
				t.Setenv("PATH", t.TempDir())
			}
			if got := Resolve(); got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve_DevUsesGitDescribe(t *testing.T) {
	withGlobals(t, "dev", "")
	dir := writeFakeGit(t, "#!/bin/sh\nif [ \"$1\" = \"describe\" ]; then echo vX.Y.Z; exit 0; fi\nexit 1\n")
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	if got := Resolve(); got != "vX.Y.Z" {
		t.Errorf("Resolve() = %v, want vX.Y.Z", got)
	}
}

func TestResolve_ReadBuildInfo(t *testing.T) {
	withGlobals(t, "dev", "")
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "v9.9.0"}}, true
	}

	if got := Resolve(); got != "v9.9.0" {
		t.Errorf("Resolve() = %v, want v9.9.0", got)
	}
}

func Test_gitDescribe(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{name: "describe succeeds", script: "#!/bin/sh\nif [ \"$1\" = \"describe\" ]; then echo v9.9.9; exit 0; fi\nexit 1\n", want: "v9.9.9"},
		{name: "describe fails rev-parse succeeds", script: "#!/bin/sh\nif [ \"$1\" = \"rev-parse\" ]; then echo abc123; exit 0; fi\nexit 1\n", want: "abc123"},
		{name: "git missing", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.script == "" {
				t.Setenv("PATH", t.TempDir())
			} else {
				t.Setenv("PATH", writeFakeGit(t, tt.script))
			}
			if got := gitDescribe(); got != tt.want {
				t.Errorf("gitDescribe() = %v, want %v", got, tt.want)
			}
		})
	}
}
