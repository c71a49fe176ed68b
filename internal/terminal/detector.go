// Package terminal decides how the encryptor shell presents itself: whether
// the session is interactive (prompt and banner are shown) and whether error
// lines may be coloured.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars contains common CI environment variables
var ciEnvVars = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"GITLAB_CI",              // GitLab CI
	"JENKINS_URL",            // Jenkins
	"BUILDKITE",              // Buildkite
	"TF_BUILD",               // Azure DevOps
}

// DetectorOptions contains options for controlling interactive detection
type DetectorOptions struct {
	ForceInteractive    bool // -interactive: always show prompt and banner
	ForceNonInteractive bool // -quiet: never show prompt and banner
}

// InteractiveDetector reports whether a human is typing into the shell.
type InteractiveDetector struct {
	options    DetectorOptions
	isTerminal func(fd int) bool
	fds        []int
}

// NewInteractiveDetector creates a detector that checks stdin and stdout.
func NewInteractiveDetector(options DetectorOptions) *InteractiveDetector {
	return &InteractiveDetector{
		options:    options,
		isTerminal: term.IsTerminal,
		fds:        []int{int(os.Stdin.Fd()), int(os.Stdout.Fd())},
	}
}

// IsInteractive returns true if the session should show prompts.
// Command line options win over CI detection, which wins over the TTY check.
func (d *InteractiveDetector) IsInteractive() bool {
	if d.options.ForceInteractive {
		return true
	}
	if d.options.ForceNonInteractive {
		return false
	}
	if IsCIEnvironment() {
		return false
	}
	return d.IsTerminal()
}

// IsTerminal reports whether stdin and stdout are both terminals.
func (d *InteractiveDetector) IsTerminal() bool {
	for _, fd := range d.fds {
		if !d.isTerminal(fd) {
			return false
		}
	}
	return len(d.fds) > 0
}

// IsCIEnvironment checks if the process runs under a CI/CD system.
func IsCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		// CI=false and friends do not count
		if envVar == "CI" {
			return !isFalsy(value)
		}
		return true
	}
	return false
}

func isFalsy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "false", "0", "no":
		return true
	default:
		return false
	}
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
