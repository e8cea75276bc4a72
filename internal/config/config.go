// Package config holds runtime configuration: defaults, the optional YAML
// config file, .env/environment overrides, CLI flags, and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultFallbackLabel is the bank label used when a file carries neither an
// <ORG> nor an <INTU.BID> value.
const DefaultFallbackLabel = "UnknownBank"

// ErrMissingDirectory is returned by Validate when no root directory was
// given by any configuration layer.
var ErrMissingDirectory = errors.New("missing required directory (use -d/--directory)")

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then layered by [LoadFile], [ApplyEnv] and the CLI flags before being
// passed (by pointer) to packages that need it.
type Config struct {
	// Root directory to scan (non-recursive).
	Directory string

	// Naming.
	FallbackLabel string // Default: "UnknownBank".

	// Behavior flags.
	DryRun bool

	// Optional SQLite rename journal. Empty disables it.
	HistoryPath string

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with every default set. Used as the base
// before file, environment and flag layers apply.
func DefaultConfig() Config {
	return Config{
		FallbackLabel: DefaultFallbackLabel,
		DryRun:        false,
		Verbose:       false,
		ColorMode:     ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// A path made only of slashes collapses to "/" rather than the empty string.
func NormalizeDirArg(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" && path != "" {
		return "/"
	}
	return trimmed
}

// Validate checks enum fields and required values. It also normalizes the
// directory argument in place.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	label := strings.TrimSpace(c.FallbackLabel)
	if label == "" {
		return errors.New("fallback label must not be empty")
	}
	if strings.ContainsAny(label, `/\`) {
		return fmt.Errorf("fallback label %q must not contain path separators", c.FallbackLabel)
	}
	c.FallbackLabel = label

	if strings.TrimSpace(c.Directory) == "" {
		return ErrMissingDirectory
	}
	c.Directory = NormalizeDirArg(c.Directory)
	return nil
}
