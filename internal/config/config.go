package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Record contains defaults for newly created records.
type Record struct {
	DefaultLanguage string `toml:"default_language"`
}

// Merge contains the paste merge policy.
type Merge struct {
	// Mode is "ask", "append" or "overwrite".
	Mode string `toml:"mode"`
}

// Editor contains field presentation settings handed to the host UI.
type Editor struct {
	ReadOnly        bool `toml:"read_only"`
	MinLength       int  `toml:"min_length"`
	MaxLength       int  `toml:"max_length"`
	CollapseDelayMS int  `toml:"collapse_delay_ms"`
}

// Clipboard contains clipboard parsing and transport settings.
type Clipboard struct {
	// StrictSeparator only accepts rows whose code is followed by a tab.
	StrictSeparator bool `toml:"strict_separator"`
	// UseSystem reads and writes the OS clipboard instead of stdin/stdout.
	UseSystem bool `toml:"use_system"`
}

// Catalog contains additional language names.
type Catalog struct {
	Extra map[string]string `toml:"extra"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	Dir    string `toml:"dir"`
}

// Config encapsulates all configuration values for mlinput.
//
// Configuration sections by subsystem:
//   - Record: default language for new records
//   - Merge: append/overwrite policy for bulk pastes
//   - Editor: read-only flag, advisory length bounds, collapse delay
//   - Clipboard: row separator strictness and OS clipboard use
//   - Catalog: extra code → name pairs for the language catalog
//   - Logging: log format, level, and optional log directory
type Config struct {
	Record    Record    `toml:"record"`
	Merge     Merge     `toml:"merge"`
	Editor    Editor    `toml:"editor"`
	Clipboard Clipboard `toml:"clipboard"`
	Catalog   Catalog   `toml:"catalog"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/mlinput/config.toml")
}

// Load locates, parses, and validates a configuration file. Environment
// overrides are applied after the file. The returned config has all fields
// normalized.
func Load(path string) (*Config, string, bool, error) {
	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	cfg := Default()
	if exists {
		data, err := os.ReadFile(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	for _, step := range []func() error{cfg.applyEnv, cfg.normalize, cfg.Validate} {
		if err := step(); err != nil {
			return nil, "", false, err
		}
	}
	return &cfg, resolvedPath, exists, nil
}

// resolveConfigPath picks the explicit path when given, otherwise the first
// existing file among the user config and ./mlinput.toml. When none exists
// the user config path is returned with exists=false.
func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		exists, err := fileExists(expanded)
		return expanded, exists, err
	}

	userPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("mlinput.toml")
	if err != nil {
		return "", false, err
	}
	for _, candidate := range []string{userPath, projectPath} {
		if ok, _ := fileExists(candidate); ok {
			return candidate, true, nil
		}
	}
	return userPath, false, nil
}

func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		return !info.IsDir(), nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	}
	return false, fmt.Errorf("stat config: %w", err)
}

// CollapseDelay returns the editor collapse delay as a duration.
func (c *Config) CollapseDelay() time.Duration {
	return time.Duration(c.Editor.CollapseDelayMS) * time.Millisecond
}

// expandPath resolves a leading "~" to the home directory and makes the
// result absolute.
func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return "", nil
	}
	if pathValue == "~" || strings.HasPrefix(pathValue, "~/") || strings.HasPrefix(pathValue, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		pathValue = filepath.Join(home, pathValue[1:])
	}
	absolute, err := filepath.Abs(pathValue)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath applies the config path rules ("~" expansion, absolute) to any
// user supplied path such as a record document.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes the annotated sample configuration to path, creating
// parent directories.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
