package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/isseis/go-text-encryptor/internal/color"
	"github.com/isseis/go-text-encryptor/internal/encryptor"
)

const maxLineBytes = 1 << 20

// bannerLines are printed when an interactive session starts.
var bannerLines = []string{
	"Get Started with the Encryption Tool!",
	"Available Commands:",
	"encode <scheme> <parameter> [target text]",
	"decode <scheme> <parameter> [target text]",
	"stats",
	"exit",
}

// Farewell is printed by the exit command.
const Farewell = "Goodbye!"

// Options configures a Session.
type Options struct {
	// DefaultText is used when a command has no text and there is no
	// previous result.
	DefaultText string
	// Prompt is printed before each line when Interactive is set.
	Prompt string
	// Banner prints the command summary at the start of interactive sessions.
	Banner bool
	// Interactive enables the prompt and banner.
	Interactive bool
	Palette     color.Palette
	Logger      *slog.Logger
	// Counters is shared by every engine the session builds. Nil gives the
	// session its own.
	Counters *encryptor.Counters
}

// Session holds the state of one shell run: the shared counters and the
// last result, which becomes the default text of the next command.
type Session struct {
	opts     Options
	counters *encryptor.Counters
	logger   *slog.Logger
	previous string
}

// NewSession creates a session from opts.
func NewSession(opts Options) *Session {
	if opts.Palette.Error == nil {
		opts.Palette = color.NewPalette(false)
	}
	counters := opts.Counters
	if counters == nil {
		counters = encryptor.NewCounters()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{opts: opts, counters: counters, logger: logger}
}

// Counters returns the session's usage counters.
func (s *Session) Counters() *encryptor.Counters {
	return s.counters
}

// Previous returns the last encode or decode result.
func (s *Session) Previous() string {
	return s.previous
}

// Run reads commands from in until exit, end of input or cancellation of
// ctx, writing results and errors to out. Cancellation also interrupts a
// pending read. It returns ctx.Err() when cancelled and read errors
// otherwise.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("Session started", "interactive", s.opts.Interactive)
	defer func() {
		s.logger.Info("Session ended",
			"basen_count", s.counters.Count(encryptor.KindBaseN),
			"caesar_count", s.counters.Count(encryptor.KindCaesar),
			"rotate_count", s.counters.Count(encryptor.KindRotate))
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	if s.opts.Interactive && s.opts.Banner {
		for _, line := range bannerLines {
			s.println(out, s.opts.Palette.Info(line))
		}
	}

	done := make(chan struct{})
	defer close(done)
	lines, readErr := readLines(in, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.opts.Interactive {
			_, _ = io.WriteString(out, s.opts.Prompt)
		}

		var raw string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read command: %w", err)
				}
				return nil
			}
			raw = l
		}

		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if s.Execute(line, out) {
			return nil
		}
	}
}

// readLines scans in on its own goroutine so a blocked read does not hold
// up cancellation. The goroutine stops once done is closed; a read that
// never returns leaves it parked until the process exits. readErr receives
// the scanner error, possibly nil, before lines is closed.
func readLines(in io.Reader, done <-chan struct{}) (lines <-chan string, readErr <-chan error) {
	lineCh := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(lineCh)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
		for scanner.Scan() {
			select {
			case lineCh <- scanner.Text():
			case <-done:
				return
			}
		}
		errCh <- scanner.Err()
	}()

	return lineCh, errCh
}

// Execute runs a single command line and writes its output to out.
// It returns true when the command ends the session.
func (s *Session) Execute(line string, out io.Writer) bool {
	cmd, err := Parse(line)
	if err != nil {
		s.logger.Debug("Command rejected", "error", err)
		s.printError(out, err)
		return false
	}

	switch cmd.Op {
	case OpExit:
		s.println(out, s.opts.Palette.Info(Farewell))
		return true
	case OpStats:
		s.println(out, s.opts.Palette.Info(s.counters.Report()))
		return false
	}

	result, err := s.transform(cmd)
	if err != nil {
		s.logger.Warn("Command failed",
			"command", cmd.Op.String(),
			"scheme", cmd.Kind.String(),
			"parameter", cmd.Param,
			"error", err)
		s.printError(out, err)
		return false
	}

	s.previous = result
	s.println(out, s.opts.Palette.Result(result))
	return false
}

// transform runs an encode or decode command on a fresh engine.
func (s *Session) transform(cmd Command) (string, error) {
	text := s.inputText(cmd)

	engine, err := encryptor.New(cmd.Kind, s.counters)
	if err != nil {
		return "", err
	}

	var result string
	if cmd.Op == OpEncode {
		result, err = engine.Encode(text, cmd.Param)
	} else {
		if cmd.Kind == encryptor.KindBaseN {
			if dropped := encryptor.PartialGroupLength(text, cmd.Param); dropped > 0 {
				s.logger.Warn("Trailing partial group dropped", "dropped", dropped, "parameter", cmd.Param)
			}
		}
		result, err = engine.Decode(text, cmd.Param)
	}
	if err != nil {
		return "", err
	}

	s.logger.Debug("Command executed",
		"command", cmd.Op.String(),
		"scheme", cmd.Kind.String(),
		"parameter", cmd.Param,
		"text_source", textSource(cmd, s.previous),
		"input_length", utf8.RuneCountInString(text),
		"output_length", utf8.RuneCountInString(result))
	return result, nil
}

// inputText picks the command's own text, else the previous result, else
// the configured default.
func (s *Session) inputText(cmd Command) string {
	switch {
	case cmd.HasText:
		return cmd.Text
	case s.previous != "":
		return s.previous
	default:
		return s.opts.DefaultText
	}
}

func textSource(cmd Command, previous string) string {
	switch {
	case cmd.HasText:
		return "argument"
	case previous != "":
		return "previous"
	default:
		return "default"
	}
}

func (s *Session) printError(out io.Writer, err error) {
	s.println(out, s.opts.Palette.Error("Error: "+capitalize(err.Error())))
}

func (s *Session) println(out io.Writer, text string) {
	_, _ = io.WriteString(out, text+"\n")
}

func capitalize(msg string) string {
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}
