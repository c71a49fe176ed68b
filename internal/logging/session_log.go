package logging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	logDirPerm  os.FileMode = 0o750
	logFilePerm os.FileMode = 0o600

	// UnknownHostFallback names log files when the hostname cannot be read
	UnknownHostFallback = "unknown"

	logTimestampLayout = "20060102T150405Z"
)

// ErrEmptyLogDirectory is returned when a session log is requested without a directory
var ErrEmptyLogDirectory = errors.New("log directory cannot be empty")

var osHostname = os.Hostname

// NewSessionID returns a new lexically sortable session identifier.
func NewSessionID() string {
	return ulid.Make().String()
}

// hostname returns the machine name, or UnknownHostFallback.
func hostname() string {
	name, err := osHostname()
	if err != nil || name == "" {
		return UnknownHostFallback
	}
	return name
}

// SessionLogPath returns the per-session JSON log path inside dir:
// <hostname>_<UTC timestamp>_<session id>.json
func SessionLogPath(dir, sessionID string, now time.Time) string {
	name := fmt.Sprintf("%s_%s_%s.json", hostname(), now.UTC().Format(logTimestampLayout), sessionID)
	return filepath.Join(dir, name)
}

// OpenSessionLog creates dir if needed and opens a new log file for the
// session. The file must not already exist.
func OpenSessionLog(dir, sessionID string, now time.Time) (*os.File, error) {
	if dir == "" {
		return nil, ErrEmptyLogDirectory
	}
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("cannot create log directory %s: %w", dir, err)
	}

	path := SessionLogPath(dir, sessionID, now)
	// #nosec G304 - path is built from the configured log directory and a generated name
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, logFilePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}
