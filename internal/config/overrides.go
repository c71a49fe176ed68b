package config

// Overrides carries command line values. Empty fields leave the loaded
// configuration untouched.
type Overrides struct {
	LogLevel string
	LogDir   string
}

// ApplyOverrides applies command line values on top of cfg. Command line
// values take precedence over the environment and the configuration file.
func ApplyOverrides(cfg *Config, o Overrides) error {
	if o.LogLevel != "" {
		level, err := ParseLogLevel(o.LogLevel)
		if err != nil {
			return err
		}
		cfg.Logging.Level = level
	}
	if o.LogDir != "" {
		cfg.Logging.Dir = o.LogDir
	}
	return nil
}
