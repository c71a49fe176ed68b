package terminal

import "os"

// Options contains all terminal-related configuration options
type Options struct {
	Detector DetectorOptions
	Color    ColorOptions
}

// Capabilities is what the shell needs to know about its terminal.
type Capabilities interface {
	IsInteractive() bool
	SupportsColor() bool
}

// DefaultCapabilities combines interactive detection and colour preferences.
type DefaultCapabilities struct {
	detector *InteractiveDetector
	color    ColorOptions
}

// NewCapabilities creates a Capabilities instance with the given options
func NewCapabilities(options Options) *DefaultCapabilities {
	return &DefaultCapabilities{
		detector: NewInteractiveDetector(options.Detector),
		color:    options.Color,
	}
}

// IsInteractive returns true if prompts and the banner should be printed.
func (c *DefaultCapabilities) IsInteractive() bool {
	return c.detector.IsInteractive()
}

// SupportsColor returns true if error lines may carry ANSI colours.
// Explicit preferences win; otherwise colour needs an interactive session,
// a colour-capable TERM and a CLICOLOR that is unset or truthy.
func (c *DefaultCapabilities) SupportsColor() bool {
	if enabled, explicit := colorPreference(c.color); explicit {
		return enabled
	}
	if !c.IsInteractive() || !termSupportsColor() {
		return false
	}
	if cliColor := os.Getenv("CLICOLOR"); cliColor != "" {
		return isTruthy(cliColor)
	}
	return true
}
