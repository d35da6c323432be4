// Package misc keeps program identity in a single place.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "issuedeck"

var (
	// set with -ldflags "-X issuedeck/misc.version=... -X issuedeck/misc.gitHash=..."
	version = "dev"
	gitHash = ""

	buildOnce sync.Once
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns commit hash either injected at link time or recorded by
// the toolchain in build information.
func GetGitHash() string {
	buildOnce.Do(func() {
		if len(gitHash) > 0 {
			return
		}
		gitHash = "unknown"
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) > 0 {
				gitHash = s.Value
				if len(gitHash) > 12 {
					gitHash = gitHash[:12]
				}
			}
		}
	})
	return gitHash
}
