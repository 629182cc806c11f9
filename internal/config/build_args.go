package config

import "fmt"

// ModuleName is the name of this module, used in logs and the CLI.
const ModuleName = "github/kontos/connect"

// The following are set via ldflags at build time.
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// GetFormattedBuildArgs returns the build information as "<module> @ <commit> (<date>)".
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
