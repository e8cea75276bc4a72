package config

// This file implements CLI flag definition and layering.
// Flags only override lower layers (defaults, config file, environment)
// when the user actually passed them, so a YAML or .env value survives an
// absent flag.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds the raw flag values bound to a FlagSet. ConfigFile and EnvFile
// select layers rather than settings, so they have no Config counterpart.
type Flags struct {
	Directory     string
	FallbackLabel string
	LogFile       string
	History       string
	ConfigFile    string
	EnvFile       string
	DryRun        bool
	Verbose       bool
	ForceColor    bool
	NoColor       bool
}

// DefineFlags registers every qfxrenamer flag on fs and returns the struct
// the values are parsed into.
func DefineFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVarP(&f.Directory, "directory", "d", "", "Directory to search for .qfx/.qbo files (required)")
	fs.StringVar(&f.FallbackLabel, "fallback-label", DefaultFallbackLabel, "Bank label used when a file has no <ORG> or <INTU.BID>")
	fs.BoolVarP(&f.DryRun, "dry-run", "n", false, "Preview renames; do not touch any file")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&f.LogFile, "log", "l", "", "Append logs to file")
	fs.StringVar(&f.History, "history", "", "Record renames in a SQLite journal at this path")
	fs.StringVar(&f.ConfigFile, "config", "", "YAML config file")
	fs.StringVar(&f.EnvFile, "env-file", "", "Load environment from this file (default: ./.env if present)")
	fs.BoolVar(&f.ForceColor, "color", false, "Force colored logs")
	fs.BoolVar(&f.NoColor, "no-color", false, "Disable colored logs")
	return f
}

// Apply copies every flag the user set on fs onto cfg.
func (f *Flags) Apply(fs *pflag.FlagSet, cfg *Config) {
	if fs.Changed("directory") {
		cfg.Directory = f.Directory
	}
	if fs.Changed("fallback-label") {
		cfg.FallbackLabel = f.FallbackLabel
	}
	if fs.Changed("dry-run") {
		cfg.DryRun = f.DryRun
	}
	if fs.Changed("verbose") {
		cfg.Verbose = f.Verbose
	}
	if fs.Changed("log") {
		cfg.LogFile = f.LogFile
	}
	if fs.Changed("history") {
		cfg.HistoryPath = f.History
	}
	if f.NoColor {
		cfg.ColorMode = ColorNever
	} else if f.ForceColor {
		cfg.ColorMode = ColorAlways
	}
}

// Load builds the effective Config from every layer, lowest first:
// defaults, YAML config file, .env and environment, then flags. The result
// is validated.
func Load(fs *pflag.FlagSet, f *Flags) (Config, error) {
	cfg := DefaultConfig()

	if f.ConfigFile != "" {
		if err := LoadFile(&cfg, f.ConfigFile); err != nil {
			return cfg, err
		}
	}
	if err := LoadEnv(f.EnvFile); err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	f.Apply(fs, &cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// parseColorMode accepts a color mode name in any case.
func parseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
}
