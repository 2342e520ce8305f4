package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envOverrides lists the MLINPUT_* variables that take precedence over the
// config file.
type envOverrides struct {
	DefaultLanguage string `env:"MLINPUT_DEFAULT_LANGUAGE"`
	MergeMode       string `env:"MLINPUT_MERGE_MODE"`
	SystemClipboard string `env:"MLINPUT_SYSTEM_CLIPBOARD"`
	LogFormat       string `env:"MLINPUT_LOG_FORMAT"`
	LogLevel        string `env:"MLINPUT_LOG_LEVEL"`
	LogDir          string `env:"MLINPUT_LOG_DIR"`
}

// loadDotEnv loads .env from the working directory when present. Variables
// already set in the environment win.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if err := loadDotEnv(); err != nil {
		return err
	}
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if v := strings.TrimSpace(overrides.DefaultLanguage); v != "" {
		c.Record.DefaultLanguage = v
	}
	if v := strings.TrimSpace(overrides.MergeMode); v != "" {
		c.Merge.Mode = v
	}
	if v := strings.TrimSpace(overrides.SystemClipboard); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MLINPUT_SYSTEM_CLIPBOARD: %w", err)
		}
		c.Clipboard.UseSystem = enabled
	}
	if v := strings.TrimSpace(overrides.LogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := strings.TrimSpace(overrides.LogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := strings.TrimSpace(overrides.LogDir); v != "" {
		c.Logging.Dir = v
	}
	return nil
}
