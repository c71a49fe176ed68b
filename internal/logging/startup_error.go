package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrorType classifies failures that stop the encryptor before a session starts
type ErrorType string

const (
	// ErrorTypeInvalidArguments represents command line parsing failures
	ErrorTypeInvalidArguments ErrorType = "invalid_arguments"
	// ErrorTypeConfigLoad represents configuration loading or parsing failures
	ErrorTypeConfigLoad ErrorType = "config_load_failed"
	// ErrorTypeLogSetup represents log handler or log file setup failures
	ErrorTypeLogSetup ErrorType = "log_setup_failed"
	// ErrorTypeSession represents failures while the shell is reading input
	ErrorTypeSession ErrorType = "session_failed"
)

// StartupError represents an error that ends the program outside of normal
// command handling
type StartupError struct {
	Type      ErrorType
	Message   string
	Component string
	SessionID string
	Err       error
}

// Error implements the error interface
func (e *StartupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v (component: %s, session_id: %s)", e.Type, e.Message, e.Err, e.Component, e.SessionID)
	}
	return fmt.Sprintf("%s: %s (component: %s, session_id: %s)", e.Type, e.Message, e.Component, e.SessionID)
}

// Is reports whether target is also a *StartupError
func (e *StartupError) Is(target error) bool {
	_, ok := target.(*StartupError)
	return ok
}

// Unwrap returns the wrapped error
func (e *StartupError) Unwrap() error {
	return e.Err
}

// ReportStartupError writes err to w in a block that is easy to spot in a
// terminal, and logs it through the default logger. Errors that are not
// *StartupError are reported as session failures.
func ReportStartupError(w io.Writer, err error, sessionID string) {
	var startupErr *StartupError
	if !errors.As(err, &startupErr) {
		startupErr = &StartupError{
			Type:      ErrorTypeSession,
			Message:   err.Error(),
			Component: "main",
			SessionID: sessionID,
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Error: %s\n", startupErr.Type)
	if startupErr.Component != "" {
		fmt.Fprintf(&sb, "  Component: %s\n", startupErr.Component)
	}
	fmt.Fprintf(&sb, "  Details: %s\n", startupErr.Message)
	if startupErr.Err != nil {
		fmt.Fprintf(&sb, "  Cause: %v\n", startupErr.Err)
	}
	if startupErr.SessionID != "" {
		fmt.Fprintf(&sb, "  Session ID: %s\n", startupErr.SessionID)
	}
	_, _ = io.WriteString(w, sb.String())

	slog.Error("Startup error occurred",
		"error_type", string(startupErr.Type),
		"error_message", startupErr.Message,
		"component", startupErr.Component,
		"session_id", startupErr.SessionID,
	)
}
