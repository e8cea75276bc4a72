package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML config file. Pointer fields distinguish an
// absent key from an explicit zero value.
type fileConfig struct {
	Directory     *string `yaml:"directory"`
	FallbackLabel *string `yaml:"fallback_label"`
	DryRun        *bool   `yaml:"dry_run"`
	Verbose       *bool   `yaml:"verbose"`
	Color         *string `yaml:"color"`
	LogFile       *string `yaml:"log_file"`
	History       *string `yaml:"history"`
}

// LoadFile reads a YAML config file at path and applies every key it sets
// onto cfg. Unknown keys are an error so typos don't pass silently.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.Directory != nil {
		cfg.Directory = *fc.Directory
	}
	if fc.FallbackLabel != nil {
		cfg.FallbackLabel = *fc.FallbackLabel
	}
	if fc.DryRun != nil {
		cfg.DryRun = *fc.DryRun
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.Color != nil {
		mode, err := parseColorMode(*fc.Color)
		if err != nil {
			return err
		}
		cfg.ColorMode = mode
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	if fc.History != nil {
		cfg.HistoryPath = *fc.History
	}
	return nil
}
