package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/querykit/internal/atomicfile"
)

type persistedConfig struct {
	DataFile *string               `toml:"data_file,omitempty"`
	Seed     *uint64               `toml:"seed,omitempty"`
	Output   *persistedOutput      `toml:"output,omitempty"`
	UI       *persistedUISettings  `toml:"ui,omitempty"`
	Log      *persistedLogSettings `toml:"log,omitempty"`
}

type persistedOutput struct {
	Format *string `toml:"format,omitempty"`
}

type persistedUISettings struct {
	Accent *string `toml:"accent,omitempty"`
}

type persistedLogSettings struct {
	Level  *string `toml:"level,omitempty"`
	Format *string `toml:"format,omitempty"`
}

func nonEmptyPtr(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// SaveTo writes the config to path atomically, omitting unset values.
func SaveTo(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config path is required")
	}
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out := persistedConfig{DataFile: nonEmptyPtr(cfg.DataFile)}
	if cfg.Seed != 0 {
		seed := cfg.Seed
		out.Seed = &seed
	}
	if f := nonEmptyPtr(cfg.Output.Format); f != nil {
		out.Output = &persistedOutput{Format: f}
	}
	if a := nonEmptyPtr(cfg.UI.Accent); a != nil {
		out.UI = &persistedUISettings{Accent: a}
	}
	level, format := nonEmptyPtr(cfg.Log.Level), nonEmptyPtr(cfg.Log.Format)
	if level != nil || format != nil {
		out.Log = &persistedLogSettings{Level: level, Format: format}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := atomicfile.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Keys lists the dotted keys accepted by Set.
var Keys = []string{"data_file", "seed", "output.format", "ui.accent", "log.level", "log.format"}

// Set assigns a dotted key. An empty value clears it.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "data_file":
		c.DataFile = value
	case "seed":
		if value == "" {
			c.Seed = 0
			return nil
		}
		seed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("seed must be a non-negative integer: %w", err)
		}
		c.Seed = seed
	case "output.format":
		c.Output.Format = value
	case "ui.accent":
		c.UI.Accent = value
	case "log.level":
		c.Log.Level = strings.ToLower(value)
	case "log.format":
		c.Log.Format = value
	default:
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys, ", "))
	}
	return c.Validate()
}
