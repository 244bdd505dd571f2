// Package version exposes build metadata for the troubleshooter binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/troubleshooter/internal/version.Version=v1.0.0 \
//	                   -X github.com/muurk/troubleshooter/internal/version.Commit=abc1234"
//
// Otherwise they are derived from VCS build info, falling back to a dev stamp.
var (
	Version = ""
	Commit  = ""
)

func init() {
	resolve(readBuildSettings())
}

// readBuildSettings returns the vcs.* settings embedded by the Go toolchain
func readBuildSettings() map[string]string {
	settings := map[string]string{}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return settings
	}
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	return settings
}

// resolve fills Version and Commit from build settings where ldflags left them empty
func resolve(settings map[string]string) {
	if Commit == "" {
		if rev := settings["vcs.revision"]; rev != "" {
			if len(rev) > 7 {
				rev = rev[:7]
			}
			if settings["vcs.modified"] == "true" {
				rev += "-dirty"
			}
			Commit = rev
		} else {
			Commit = "unknown"
		}
	}

	if Version == "" {
		if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
			Version = "dev-" + t.Format("20060102")
		} else {
			Version = "dev-" + time.Now().Format("20060102-150405")
		}
	}
}

// Full returns the version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Platform returns the Go runtime and target platform, used by `version --verbose`
func Platform() string {
	return fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
