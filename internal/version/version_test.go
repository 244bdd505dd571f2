package version

import (
	"strings"
	"testing"
)

func TestResolveFromBuildSettings(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	defer func() { Version, Commit = oldVersion, oldCommit }()

	Version, Commit = "", ""
	resolve(map[string]string{
		"vcs.revision": "0123456789abcdef",
		"vcs.modified": "true",
		"vcs.time":     "2026-03-01T10:00:00Z",
	})

	if Commit != "0123456-dirty" {
		t.Errorf("Commit = %q, want 0123456-dirty", Commit)
	}
	if Version != "dev-20260301" {
		t.Errorf("Version = %q, want dev-20260301", Version)
	}
}

func TestResolveKeepsLdflags(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	defer func() { Version, Commit = oldVersion, oldCommit }()

	Version, Commit = "v1.2.3", "abc1234"
	resolve(map[string]string{"vcs.revision": "ffffffffff"})

	if Full() != "v1.2.3 (commit: abc1234)" {
		t.Errorf("Full() = %q", Full())
	}
}

func TestResolveWithoutBuildInfo(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	defer func() { Version, Commit = oldVersion, oldCommit }()

	Version, Commit = "", ""
	resolve(map[string]string{})

	if Commit != "unknown" {
		t.Errorf("Commit = %q, want unknown", Commit)
	}
	if !strings.HasPrefix(Version, "dev-") {
		t.Errorf("Version = %q, want dev- prefix", Version)
	}
	if !strings.Contains(Platform(), "/") {
		t.Errorf("Platform() = %q", Platform())
	}
}
