package terminal

import (
	"os"
	"strings"
)

// colorTerminals lists TERM values (or prefixes) known to support basic colours
var colorTerminals = []string{
	"xterm",
	"screen",
	"tmux",
	"rxvt",
	"vt100",
	"ansi",
	"linux",
	"putty",
}

// ColorOptions carries command line colour overrides.
type ColorOptions struct {
	DisableColor bool // -no-color
}

// termSupportsColor checks the TERM environment variable.
func termSupportsColor() bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if value == "" || value == "dumb" {
		return false
	}
	for _, known := range colorTerminals {
		if value == known || strings.HasPrefix(value, known+"-") {
			return true
		}
	}
	return false
}

// colorPreference resolves explicit user preferences. The second result is
// false when the user expressed none.
//
// Priority: -no-color, CLICOLOR_FORCE, NO_COLOR (any value, even empty).
func colorPreference(options ColorOptions) (enabled, explicit bool) {
	if options.DisableColor {
		return false, true
	}
	if isTruthy(os.Getenv("CLICOLOR_FORCE")) {
		return true, true
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false, true
	}
	return false, false
}
