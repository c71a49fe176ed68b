// Package main provides the encryptor command: an interactive shell that
// encodes and decodes text with the base-N, Caesar and block rotation
// schemes and reports how often each scheme was used.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/isseis/go-text-encryptor/internal/color"
	"github.com/isseis/go-text-encryptor/internal/config"
	"github.com/isseis/go-text-encryptor/internal/logging"
	"github.com/isseis/go-text-encryptor/internal/shell"
	"github.com/isseis/go-text-encryptor/internal/terminal"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitInterrupted = 130
)

var (
	errConflictingModes = errors.New("-interactive and -quiet cannot be used together")
	newSessionID        = logging.NewSessionID
)

type cliOptions struct {
	configPath  string
	logLevel    string
	logDir      string
	interactive bool
	quiet       bool
	noColor     bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	sessionID := newSessionID()

	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		logging.ReportStartupError(stderr, &logging.StartupError{
			Type:      logging.ErrorTypeInvalidArguments,
			Message:   "Invalid command line arguments",
			Component: "main",
			SessionID: sessionID,
			Err:       err,
		}, sessionID)
		return exitFailure
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		logging.ReportStartupError(stderr, &logging.StartupError{
			Type:      logging.ErrorTypeConfigLoad,
			Message:   "Failed to load configuration",
			Component: "config",
			SessionID: sessionID,
			Err:       err,
		}, sessionID)
		return exitFailure
	}

	logger, closeLog, err := logging.Setup(logging.Options{
		Level:     cfg.Logging.Level.SlogLevel(),
		LogDir:    cfg.Logging.Dir,
		SessionID: sessionID,
		Console:   stderr,
	})
	if err != nil {
		logging.ReportStartupError(stderr, &logging.StartupError{
			Type:      logging.ErrorTypeLogSetup,
			Message:   "Failed to set up logging",
			Component: "logging",
			SessionID: sessionID,
			Err:       err,
		}, sessionID)
		return exitFailure
	}
	defer func() {
		if err := closeLog(); err != nil {
			_, _ = fmt.Fprintf(stderr, "Warning: failed to close session log: %v\n", err)
		}
	}()

	caps := terminal.NewCapabilities(terminal.Options{
		Detector: terminal.DetectorOptions{
			ForceInteractive:    opts.interactive,
			ForceNonInteractive: opts.quiet,
		},
		Color: terminal.ColorOptions{DisableColor: opts.noColor},
	})

	logger.Debug("Configuration loaded",
		"config", opts.configPath,
		"log_level", cfg.Logging.Level.String(),
		"log_dir", cfg.Logging.Dir,
		"interactive", caps.IsInteractive(),
		"color", caps.SupportsColor())

	session := shell.NewSession(shell.Options{
		DefaultText: cfg.Session.DefaultText,
		Prompt:      *cfg.Session.Prompt,
		Banner:      *cfg.Session.Banner,
		Interactive: caps.IsInteractive(),
		Palette:     color.NewPalette(caps.SupportsColor()),
		Logger:      logger,
	})

	if err := session.Run(ctx, stdin, stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Session interrupted")
			return exitInterrupted
		}
		logging.ReportStartupError(stderr, &logging.StartupError{
			Type:      logging.ErrorTypeSession,
			Message:   "Failed to read commands",
			Component: "shell",
			SessionID: sessionID,
			Err:       err,
		}, sessionID)
		return exitFailure
	}
	return exitOK
}

func parseArgs(args []string, stderr io.Writer) (*cliOptions, error) {
	opts := &cliOptions{}

	fs := flag.NewFlagSet("encryptor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs, stderr) }
	fs.StringVar(&opts.configPath, "config", "", "path to TOML config file")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides config and "+config.EnvLogLevel)
	fs.StringVar(&opts.logDir, "log-dir", "", "directory for per-session JSON logs; overrides config and "+config.EnvLogDir)
	fs.BoolVar(&opts.interactive, "interactive", false, "always show the banner and prompt")
	fs.BoolVar(&opts.quiet, "quiet", false, "never show the banner and prompt")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.interactive && opts.quiet {
		return nil, errConflictingModes
	}
	return opts, nil
}

func loadConfig(opts *cliOptions) (*config.Config, error) {
	cfg, err := config.NewLoader().Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyOverrides(cfg, config.Overrides{
		LogLevel: opts.logLevel,
		LogDir:   opts.logDir,
	}); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	_, _ = fmt.Fprintf(w, "Usage: %s [flags]\n", filepath.Base(os.Args[0]))
	_, _ = fmt.Fprintln(w, "Reads commands from standard input:")
	_, _ = fmt.Fprintln(w, "  encode <basen|caesar|rotate> <parameter> [text]")
	_, _ = fmt.Fprintln(w, "  decode <basen|caesar|rotate> <parameter> [text]")
	_, _ = fmt.Fprintln(w, "  stats")
	_, _ = fmt.Fprintln(w, "  exit")
	fs.PrintDefaults()
}
