package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvs are environment variables set by common CI systems.
var ciEnvs = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"TRAVIS",
	"JENKINS_HOME",
	"BUILDKITE",
	"BITBUCKET_BUILD_NUMBER",
	"DRONE",
	"TF_BUILD",
}

// isTerminalFn is swapped in tests.
var isTerminalFn = term.IsTerminal

// IsInteractive reports whether prompts can be shown: stdout must be a
// terminal and no CI environment variable may be set.
func IsInteractive() bool {
	if !IsTTY(os.Stdout) {
		return false
	}

	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return false
		}
	}

	return true
}

// IsTTY checks if f is a terminal.
func IsTTY(f *os.File) bool {
	return isTerminalFn(int(f.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}
