// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Report the VCS revision the binary was built from.
package version

import (
	"fmt"
	"runtime/debug"
)

const devVersion = "dev"

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the short VCS revision from build info, suffixed with
// "(dirty)" for modified trees. It returns "dev" when no revision is recorded.
func GetVersion() string {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return devVersion
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

	if revision == "" {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
		return devVersion
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
