// Package dataset loads the records querykit runs its queries over.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/querykit/internal/model"
)

// Dataset is the input for a querykit run.
type Dataset struct {
	People  []model.Person  `json:"people" yaml:"people" toml:"people"`
	Numbers model.NumberSet `json:"numbers" yaml:"numbers" toml:"numbers"`

	// Source names where the data came from ("sample" or a file path).
	Source string `json:"-" yaml:"-" toml:"-"`
}

// Sample returns the built-in sample dataset.
func Sample() *Dataset {
	return &Dataset{
		People:  model.SamplePeople(),
		Numbers: model.SampleNumbers(),
		Source:  "sample",
	}
}

// Load reads a dataset file. The format is chosen from the extension:
// .yaml/.yml, .toml or .json.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	ds, err := Parse(data, formatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	ds.Source = path
	return ds, nil
}

// Format identifies a dataset encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

func formatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Parse decodes a dataset. A dataset with neither people nor numbers is an error.
func Parse(data []byte, format Format) (*Dataset, error) {
	var ds Dataset

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&ds); err != nil {
			return nil, err
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &ds)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&ds); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", format)
	}

	if len(ds.People) == 0 && len(ds.Numbers) == 0 {
		return nil, fmt.Errorf("dataset has no people and no numbers")
	}
	return &ds, nil
}

// Resolve picks the dataset for a run: an explicit path wins, then the
// configured path, then the built-in sample.
func Resolve(flagPath, configPath string) (*Dataset, error) {
	switch {
	case strings.TrimSpace(flagPath) != "":
		return Load(flagPath)
	case strings.TrimSpace(configPath) != "":
		return Load(configPath)
	default:
		return Sample(), nil
	}
}
