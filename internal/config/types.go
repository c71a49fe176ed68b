package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Config is the top-level structure of an encryptor configuration file.
type Config struct {
	Session SessionConfig `toml:"session"`
	Logging LoggingConfig `toml:"logging"`
}

// SessionConfig controls the interactive shell.
type SessionConfig struct {
	// DefaultText is encoded or decoded when a command omits its text and
	// there is no previous result to reuse.
	DefaultText string `toml:"default_text"`

	// Prompt is printed before each line in interactive sessions.
	Prompt *string `toml:"prompt"`

	// Banner enables the command summary printed when an interactive
	// session starts (nil=default true).
	Banner *bool `toml:"banner"`
}

// LoggingConfig controls diagnostic logging. Logs never go to stdout.
type LoggingConfig struct {
	Level LogLevel `toml:"level"`
	// Dir receives one JSON log file per session; empty disables file logging.
	Dir string `toml:"dir"`
}

// LogLevel represents the logging level for the application.
// Valid values: debug, info, warn, error
type LogLevel string

const (
	// LogLevelDebug enables debug-level logging
	LogLevelDebug LogLevel = "debug"

	// LogLevelInfo enables info-level logging
	LogLevelInfo LogLevel = "info"

	// LogLevelWarn enables warning-level logging (default)
	LogLevelWarn LogLevel = "warn"

	// LogLevelError enables error-level logging only
	LogLevelError LogLevel = "error"
)

// ErrInvalidLogLevel is returned when an invalid log level is provided
var ErrInvalidLogLevel = errors.New("invalid log level")

// ParseLogLevel validates s and returns it as a LogLevel. An empty string
// yields the default level.
func ParseLogLevel(s string) (LogLevel, error) {
	var l LogLevel
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return "", err
	}
	return l, nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface so
// invalid levels are rejected while the TOML file is parsed.
func (l *LogLevel) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	switch LogLevel(s) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		*l = LogLevel(s)
		return nil
	case "":
		*l = DefaultLogLevel
		return nil
	default:
		return fmt.Errorf("%w: %q (must be one of: debug, info, warn, error)", ErrInvalidLogLevel, string(text))
	}
}

// SlogLevel converts l to its slog.Level.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// String returns the string representation of LogLevel.
func (l LogLevel) String() string {
	return string(l)
}
