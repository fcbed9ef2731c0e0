// Where: cli/internal/version/version.go
// What: Version information retrieval.
// Why: Report the module version and VCS revision embedded at build time.
package version

import (
	"fmt"
	"runtime/debug"

	"github.com/poruru/funcnew/cli/internal/meta"
)

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns "<app> <version>", appending the short VCS revision and
// a dirty marker when the build recorded them. Builds without module
// information report "dev".
func GetVersion() string {
	info, ok := readBuildInfo()
	if !ok {
		return meta.AppName + " dev"
	}
	return format(info)
}

func format(info *debug.BuildInfo) string {
	moduleVersion := info.Main.Version
	if moduleVersion == "" || moduleVersion == "(devel)" {
		moduleVersion = "dev"
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	out := fmt.Sprintf("%s %s", meta.AppName, moduleVersion)
	if revision == "" {
		return out
	}
	if modified {
		return fmt.Sprintf("%s (%s, dirty)", out, revision)
	}
	return fmt.Sprintf("%s (%s)", out, revision)
}
