package terminal

import (
	"os"
	"testing"
)

// setupCleanEnv clears every variable the package reads and sets only the
// given ones, so tests do not depend on the developer's shell.
func setupCleanEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	// NO_COLOR is checked with os.LookupEnv, so empty differs from unset.
	if value, specified := envVars["NO_COLOR"]; specified {
		t.Setenv("NO_COLOR", value)
	} else {
		t.Setenv("NO_COLOR", "")
		_ = os.Unsetenv("NO_COLOR")
	}

	valueCheckedVars := []string{"CLICOLOR", "CLICOLOR_FORCE", "TERM"}
	valueCheckedVars = append(valueCheckedVars, ciEnvVars...)
	for _, v := range valueCheckedVars {
		t.Setenv(v, envVars[v])
	}
}

func fakeDetector(options DetectorOptions, terminals map[int]bool) *InteractiveDetector {
	return &InteractiveDetector{
		options:    options,
		isTerminal: func(fd int) bool { return terminals[fd] },
		fds:        []int{0, 1},
	}
}
