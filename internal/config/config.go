// Package config handles global querykit configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/querykit/internal/logger"
)

// EnvConfigPath names the environment variable that overrides the config location.
const EnvConfigPath = "QUERYKIT_CONFIG"

// Config represents the global querykit configuration.
type Config struct {
	// DataFile is an optional dataset file used when --data is not given.
	// Relative paths are resolved against the config file's directory.
	DataFile string `toml:"data_file"`

	// Seed is the default seed for `qk random`. Zero means "pick one".
	Seed uint64 `toml:"seed"`

	// Output controls default rendering.
	Output OutputConfig `toml:"output"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`

	// Log controls diagnostic logging on stderr.
	Log LogConfig `toml:"log"`
}

// OutputConfig represents output preferences.
type OutputConfig struct {
	// Format is one of text, markdown, html or json.
	Format string `toml:"format"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown rendering.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// LogConfig represents logging preferences.
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text, json
}

// Formats lists the accepted output formats.
var Formats = []string{"text", "markdown", "html", "json"}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	if f := strings.TrimSpace(c.Output.Format); f != "" && !isOneOf(f, Formats...) {
		return fmt.Errorf("output.format %q must be one of %s", f, strings.Join(Formats, ", "))
	}
	if l := strings.TrimSpace(c.Log.Level); l != "" && !logger.ValidLevel(l) {
		return fmt.Errorf("log.level %q must be one of %s", c.Log.Level, strings.Join(logger.Levels, ", "))
	}
	if f := strings.TrimSpace(c.Log.Format); f != "" && !isOneOf(f, "text", "json") {
		return fmt.Errorf("log.format %q must be text or json", f)
	}
	return nil
}

func isOneOf(v string, options ...string) bool {
	for _, o := range options {
		if v == o {
			return true
		}
	}
	return false
}

// OutputFormat returns the configured output format, defaulting to text.
func (c *Config) OutputFormat() string {
	if f := strings.TrimSpace(c.Output.Format); f != "" {
		return f
	}
	return "text"
}

// ResolveDataFile returns the configured dataset path, resolved against the
// directory of the config file it came from.
func (c *Config) ResolveDataFile(configPath string) string {
	p := strings.TrimSpace(c.DataFile)
	if p == "" {
		return ""
	}
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	if filepath.IsAbs(p) || configPath == "" {
		return filepath.Clean(p)
	}
	return filepath.Join(filepath.Dir(configPath), filepath.FromSlash(p))
}

// LoadOptional loads path, returning an empty config when it does not exist.
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	config, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// LoadUnvalidated decodes path without checking enumerated values so a file
// holding a bad value can still be edited. A missing file gives an empty
// config; malformed TOML is still an error.
func LoadUnvalidated(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return decodeFile(path)
}

func decodeFile(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// ResolveConfigPath resolves the effective config path: an explicit path
// wins, then $QUERYKIT_CONFIG, then DefaultPath.
func ResolveConfigPath(explicitConfigPath string) string {
	if strings.TrimSpace(explicitConfigPath) != "" {
		return explicitConfigPath
	}
	if env := strings.TrimSpace(os.Getenv(EnvConfigPath)); env != "" {
		return env
	}
	return DefaultPath()
}

// DefaultPath returns the default config file path.
// Checks ~/.config/querykit/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if xdgPath, err := XDGPath(); err == nil {
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "querykit", "config.toml")
	}

	// Last resort fallback
	return filepath.Join(".", "config.toml")
}

// XDGPath returns the XDG-style config path (~/.config/querykit/config.toml).
func XDGPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "querykit", "config.toml"), nil
}

const defaultConfigTemplate = `# querykit configuration

# Dataset used when --data is not given (yaml, toml or json).
# Relative paths are resolved against this file's directory.
# data_file = "people.yaml"

# Default seed for 'qk random'.
# seed = 42

# [output]
# format = "text"   # text, markdown, html or json

# Optional UI accent color for headers in terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"

# [log]
# level = "warn"    # debug, info, warn or error
# format = "text"   # text or json
`

// CreateDefault writes a commented template to path unless a file exists there.
// It reports whether a file was created.
func CreateDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return true, nil
}
