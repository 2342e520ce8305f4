package config

import (
	"errors"
	"fmt"

	"mlinput/internal/merge"
	"mlinput/internal/record"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRecord(); err != nil {
		return err
	}
	if err := c.validateMerge(); err != nil {
		return err
	}
	if err := c.validateEditor(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateRecord() error {
	if err := record.ValidateCode(c.Record.DefaultLanguage); err != nil {
		return fmt.Errorf("record.default_language: %w", err)
	}
	return nil
}

func (c *Config) validateMerge() error {
	if _, err := merge.ParseMode(c.Merge.Mode); err != nil {
		return fmt.Errorf("merge.mode: %w", err)
	}
	return nil
}

// MergeMode returns the parsed merge mode. Validate guarantees it parses.
func (c *Config) MergeMode() merge.Mode {
	mode, err := merge.ParseMode(c.Merge.Mode)
	if err != nil {
		return merge.Ask
	}
	return mode
}

func (c *Config) validateEditor() error {
	if c.Editor.MinLength < 0 {
		return errors.New("editor.min_length must be >= 0")
	}
	if c.Editor.MaxLength <= 0 {
		return errors.New("editor.max_length must be positive")
	}
	if c.Editor.MaxLength < c.Editor.MinLength {
		return errors.New("editor.max_length must be >= editor.min_length")
	}
	if c.Editor.CollapseDelayMS < 0 {
		return errors.New("editor.collapse_delay_ms must be >= 0")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	for code, name := range c.Catalog.Extra {
		if err := record.ValidateCode(code); err != nil {
			return fmt.Errorf("catalog.extra: %w", err)
		}
		if name == "" {
			return fmt.Errorf("catalog.extra.%s: name must not be empty", code)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
