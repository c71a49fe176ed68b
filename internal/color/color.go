// Package color wraps shell output in ANSI escape sequences.
//
//nolint:revive // package name conflicts with standard library
package color

// ANSI color codes
const (
	resetCode = "\033[0m"
	grayCode  = "\033[90m" // Bright black/gray
	greenCode = "\033[32m"
	redCode   = "\033[31m"
)

// Color wraps text with ANSI escape sequences.
type Color func(text string) string

// NewColor creates a color function with the specified ANSI code.
func NewColor(ansiCode string) Color {
	return func(text string) string {
		return ansiCode + text + resetCode
	}
}

// Plain returns text unchanged.
func Plain(text string) string { return text }

// Predefined color functions
var (
	Gray  = NewColor(grayCode)
	Green = NewColor(greenCode)
	Red   = NewColor(redCode)
)

// Palette holds the colours the shell uses for each kind of line.
type Palette struct {
	Error  Color // "Error: ..." lines
	Result Color // encode/decode results
	Info   Color // banner, stats and farewell
}

// NewPalette returns the coloured palette when enabled, otherwise a palette
// that leaves every line untouched.
func NewPalette(enabled bool) Palette {
	if !enabled {
		return Palette{Error: Plain, Result: Plain, Info: Plain}
	}
	return Palette{Error: Red, Result: Green, Info: Gray}
}
