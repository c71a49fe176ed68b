package config

// Default values for configuration fields
const (
	DefaultText     = "my encryption string"
	DefaultPrompt   = "> "
	DefaultBanner   = true
	DefaultLogLevel = LogLevelWarn
)

// Default returns a configuration with every field at its default.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills unset fields of cfg with their default values.
func ApplyDefaults(cfg *Config) {
	if cfg.Session.DefaultText == "" {
		cfg.Session.DefaultText = DefaultText
	}
	if cfg.Session.Prompt == nil {
		prompt := DefaultPrompt
		cfg.Session.Prompt = &prompt
	}
	if cfg.Session.Banner == nil {
		banner := DefaultBanner
		cfg.Session.Banner = &banner
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
}
