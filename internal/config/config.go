package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

var supportedLangs = []string{"en", "fr"}

// Config is the runtime configuration of ideawatch. Command-line flags
// override the environment.
type Config struct {
	LogLevel    string `env:"IDEAWATCH_LOG_LEVEL" envDefault:"info"`
	Format      string `env:"IDEAWATCH_FORMAT" envDefault:"table"`
	Lang        string `env:"IDEAWATCH_LANG" envDefault:"en"`
	CatalogPath string `env:"IDEAWATCH_CATALOG"`
	Workers     int    `env:"IDEAWATCH_WORKERS" envDefault:"4"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Format {
	case FormatTable, FormatJSON, FormatCSV:
	default:
		return fmt.Errorf("unsupported format %q (want table, json or csv)", c.Format)
	}
	if !isSupportedLang(c.Lang) {
		return fmt.Errorf("unsupported lang %q (want %s)", c.Lang, strings.Join(supportedLangs, " or "))
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func isSupportedLang(lang string) bool {
	for _, l := range supportedLangs {
		if l == lang {
			return true
		}
	}
	return false
}
