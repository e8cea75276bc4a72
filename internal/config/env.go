package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvDirectory     = "QFXRENAMER_DIRECTORY"
	EnvFallbackLabel = "QFXRENAMER_FALLBACK_LABEL"
	EnvLogFile       = "QFXRENAMER_LOG"
	EnvHistory       = "QFXRENAMER_HISTORY"
	EnvDryRun        = "QFXRENAMER_DRY_RUN"
	EnvVerbose       = "QFXRENAMER_VERBOSE"
)

// LoadEnv loads a .env file into the process environment. An explicit path
// must exist; with no path, ./.env is loaded when present and ignored
// otherwise. Variables already set in the environment are not overridden.
func LoadEnv(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
		return nil
	}
	_ = godotenv.Load()
	return nil
}

// ApplyEnv copies QFXRENAMER_* environment variables onto cfg. Unset or
// empty variables leave the current value alone.
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv(EnvDirectory); v != "" {
		cfg.Directory = v
	}
	if v := os.Getenv(EnvFallbackLabel); v != "" {
		cfg.FallbackLabel = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvHistory); v != "" {
		cfg.HistoryPath = v
	}

	dryRun, err := parseBoolEnv(EnvDryRun, cfg.DryRun)
	if err != nil {
		return err
	}
	cfg.DryRun = dryRun

	verbose, err := parseBoolEnv(EnvVerbose, cfg.Verbose)
	if err != nil {
		return err
	}
	cfg.Verbose = verbose
	return nil
}

// parseBoolEnv parses a boolean environment variable.
// Returns defaultValue if the variable is not set.
func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid boolean value for %s: %s", key, value)
	}
	return parsed, nil
}
