// Package config loads the encryptor's TOML configuration file, applies
// defaults and merges environment and command line overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables that override the configuration file
const (
	EnvLogLevel = "ENCRYPTOR_LOG_LEVEL"
	EnvLogDir   = "ENCRYPTOR_LOG_DIR"
)

// Error definitions for the config package
var (
	// ErrReadConfig is returned when the configuration file cannot be read
	ErrReadConfig = errors.New("failed to read config file")

	// ErrParseConfig is returned when the configuration file is not valid TOML
	// for the Config schema
	ErrParseConfig = errors.New("failed to parse config")
)

// Loader reads configuration files.
type Loader struct {
	readFile  func(name string) ([]byte, error)
	lookupEnv func(key string) (string, bool)
}

// NewLoader creates a loader backed by the real file system and environment.
func NewLoader() *Loader {
	return &Loader{readFile: os.ReadFile, lookupEnv: os.LookupEnv}
}

// Load returns the configuration at path with defaults and environment
// overrides applied. An empty path yields the defaults plus overrides.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		content, err := l.readFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadConfig, err)
		}
		cfg, err = Parse(content)
		if err != nil {
			return nil, err
		}
	}

	if err := l.applyEnv(cfg); err != nil {
		return nil, err
	}
	ApplyDefaults(cfg)
	return cfg, nil
}

// Parse decodes TOML content into a Config. Unknown keys are rejected so
// that typos do not silently fall back to defaults.
func Parse(content []byte) (*Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return nil, fmt.Errorf("%w: unknown keys: %s", ErrParseConfig, unknownKeys(strictErr))
		}
		return nil, fmt.Errorf("%w: %w", ErrParseConfig, err)
	}
	ApplyDefaults(&cfg)
	return &cfg, nil
}

func (l *Loader) applyEnv(cfg *Config) error {
	if v, ok := l.lookupEnv(EnvLogLevel); ok && v != "" {
		level, err := ParseLogLevel(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.Logging.Level = level
	}
	if v, ok := l.lookupEnv(EnvLogDir); ok && v != "" {
		cfg.Logging.Dir = v
	}
	return nil
}

func unknownKeys(strictErr *toml.StrictMissingError) string {
	keys := make([]string, 0, len(strictErr.Errors))
	for _, e := range strictErr.Errors {
		keys = append(keys, strings.Join(e.Key(), "."))
	}
	return strings.Join(keys, ", ")
}
