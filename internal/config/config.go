// Package config resolves settings from the environment. Command-line flags
// take these values as their defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/idilsaglam/packing/internal/packlist"
)

// Default configuration values.
const (
	DefaultFile     = "packing.json"
	DefaultTheme    = "classic"
	DefaultLogLevel = "info"
	DefaultLocale   = "en"
	DefaultSort     = string(packlist.SortInput)
)

// Environment variable names.
const (
	EnvFile     = "PACKING_FILE"
	EnvTheme    = "PACKING_THEME"
	EnvLogLevel = "PACKING_LOG_LEVEL"
	EnvLogFile  = "PACKING_LOG_FILE"
	EnvLocale   = "PACKING_LOCALE"
	EnvSort     = "PACKING_SORT"
)

// Config holds the application settings.
type Config struct {
	// File is the data file. Relative paths resolve against the working directory.
	File string

	Theme    string // classic, neon, mono
	LogLevel string
	LogFile  string // empty disables logging
	Locale   string // BCP 47 tag used to collate descriptions
	Sort     string // initial sort key
}

// Validation errors.
var (
	ErrInvalidTheme    = errors.New("theme must be one of classic, neon, mono")
	ErrInvalidLogLevel = errors.New("log level must be one of debug, info, warn, error")
	ErrInvalidFile     = errors.New("data file must end in .json, .db or .sqlite")
)

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		File:     envOr(EnvFile, DefaultFile),
		Theme:    envOr(EnvTheme, DefaultTheme),
		LogLevel: envOr(EnvLogLevel, DefaultLogLevel),
		LogFile:  strings.TrimSpace(os.Getenv(EnvLogFile)),
		Locale:   envOr(EnvLocale, DefaultLocale),
		Sort:     envOr(EnvSort, DefaultSort),
	}
}

// Validate checks every field and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidTheme, c.Theme))
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil || lvl > zapcore.ErrorLevel {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel))
	}

	if c.File != "" {
		switch strings.ToLower(filepath.Ext(c.File)) {
		case ".json", ".db", ".sqlite":
		default:
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidFile, c.File))
		}
	}

	if _, err := packlist.ParseSortKey(c.Sort); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
