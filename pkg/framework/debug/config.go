package debug

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds logger settings read from the environment.
type Config struct {
	Level   string `env:"PARAMTOOLBOX_LOG_LEVEL" envDefault:"warn"`
	Prefix  string `env:"PARAMTOOLBOX_LOG_PREFIX" envDefault:"paramtoolbox"`
	Enabled bool   `env:"PARAMTOOLBOX_LOG_ENABLED" envDefault:"true"`
	// ShowFile adds file:line to every message.
	ShowFile bool `env:"PARAMTOOLBOX_LOG_SHOW_FILE" envDefault:"false"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ParseLevel maps a level name to a LogLevel. Matching ignores case.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	case "off", "none":
		return LogLevelOff, nil
	default:
		return LogLevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Configure applies cfg to l.
func (l *Logger) Configure(cfg Config) error {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	flags := DefaultFlags
	if cfg.ShowFile {
		flags |= FlagShortFile
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.prefix = cfg.Prefix
	l.enabled = cfg.Enabled
	l.flags = flags
	return nil
}

// ConfigureFromEnv loads Config from the environment and applies it to the
// default logger.
func ConfigureFromEnv() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if err := defaultLogger.Configure(cfg); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	return nil
}
