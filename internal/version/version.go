package version

import "fmt"

const (
	// programName is the name of this program.
	programName = "pgconnparms"
)

var (
	// Version variables imported at build stage.
	gitTag               = "1.0a1"
	gitCommit, gitBranch string
)

// Name returns the name of this program.
func Name() string {
	return programName
}

// String returns the version line printed by '--version'.
func String() string {
	if gitCommit == "" {
		return fmt.Sprintf("Version %s", gitTag)
	}
	return fmt.Sprintf("Version %s %s-%s", gitTag, gitCommit, gitBranch)
}
