package config

import (
	"fmt"
	"strings"

	"mlinput/internal/language"
	"mlinput/internal/record"
)

func (c *Config) normalize() error {
	c.normalizeRecord()
	c.Merge.Mode = strings.ToLower(strings.TrimSpace(c.Merge.Mode))
	if c.Merge.Mode == "" {
		c.Merge.Mode = defaultMergeMode
	}
	c.normalizeCatalog()
	return c.normalizeLogging()
}

func (c *Config) normalizeRecord() {
	code := record.CanonicalCode(c.Record.DefaultLanguage)
	if code == "" {
		code = defaultLanguage
	}
	// Accept word forms such as "persian" for the default language.
	if mapped := language.ToISO2(code); mapped != "" {
		code = mapped
	}
	c.Record.DefaultLanguage = code
}

func (c *Config) normalizeCatalog() {
	if len(c.Catalog.Extra) == 0 {
		return
	}
	normalized := make(map[string]string, len(c.Catalog.Extra))
	for code, name := range c.Catalog.Extra {
		normalized[record.CanonicalCode(code)] = strings.TrimSpace(name)
	}
	c.Catalog.Extra = normalized
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
