package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// schemaVersion is written into every JSON log record
const schemaVersion = 1

// Options configures Setup.
type Options struct {
	Level     slog.Level
	LogDir    string    // per-session JSON log directory; empty disables the file
	SessionID string    // attached to every file record
	Console   io.Writer // text output; defaults to os.Stderr
	Now       func() time.Time
}

// Setup builds the session logger: a text handler on the console writer
// and, when LogDir is set, a JSON handler writing to a new session log file.
// The returned close function flushes and closes the file, if any.
func Setup(opts Options) (*slog.Logger, func() error, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	handlers := []slog.Handler{slog.NewTextHandler(console, handlerOpts)}
	closeFn := func() error { return nil }

	if opts.LogDir != "" {
		f, err := OpenSessionLog(opts.LogDir, opts.SessionID, now())
		if err != nil {
			return nil, nil, err
		}
		closeFn = f.Close

		jsonHandler := slog.NewJSONHandler(f, handlerOpts).WithAttrs([]slog.Attr{
			slog.String("hostname", hostname()),
			slog.Int("pid", os.Getpid()),
			slog.Int("schema_version", schemaVersion),
			slog.String("session_id", opts.SessionID),
		})
		handlers = append(handlers, jsonHandler)
	}

	multi, err := NewMultiHandler(handlers...)
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}
	return slog.New(multi), closeFn, nil
}
