package config

import (
	"errors"
	"testing"

	"github.com/idilsaglam/packing/internal/packlist"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{EnvFile, EnvTheme, EnvLogLevel, EnvLogFile, EnvLocale, EnvSort} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.File != DefaultFile || cfg.LogFile != "" {
		t.Fatalf("unexpected file defaults %+v", cfg)
	}
	if cfg.Theme != DefaultTheme || cfg.LogLevel != DefaultLogLevel || cfg.Locale != DefaultLocale || cfg.Sort != DefaultSort {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvFile, " trip.json ")
	t.Setenv(EnvTheme, "neon")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFile, "/tmp/packing.log")
	t.Setenv(EnvLocale, "sv")
	t.Setenv(EnvSort, "packed")

	cfg := Load()
	want := Config{
		File:     "trip.json",
		Theme:    "neon",
		LogLevel: "debug",
		LogFile:  "/tmp/packing.log",
		Locale:   "sv",
		Sort:     "packed",
	}
	if *cfg != want {
		t.Fatalf("expected %+v, got %+v", want, *cfg)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{Theme: "classic", LogLevel: "info", Locale: "en", Sort: "input"}
	}
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"valid", func(*Config) {}, nil},
		{"sqlite file", func(c *Config) { c.File = "trip.sqlite" }, nil},
		{"bad theme", func(c *Config) { c.Theme = "pink" }, ErrInvalidTheme},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, ErrInvalidLogLevel},
		{"fatal level", func(c *Config) { c.LogLevel = "fatal" }, ErrInvalidLogLevel},
		{"bad file", func(c *Config) { c.File = "trip.txt" }, ErrInvalidFile},
		{"bad sort", func(c *Config) { c.Sort = "size" }, packlist.ErrUnknownSortKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			tc.mutate(c)
			err := c.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
