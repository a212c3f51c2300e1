// Package descriptor loads calendar descriptions from YAML or TOML files and
// turns them into ical documents.
package descriptor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dimchansky/utfbom"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the syntax of a descriptor file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// File is the root of a descriptor file.
type File struct {
	ProdID     string      `yaml:"prodid" toml:"prodid"`
	Version    string      `yaml:"version" toml:"version"`
	CalScale   string      `yaml:"calscale" toml:"calscale"`
	Method     string      `yaml:"method" toml:"method"`
	Properties []Property  `yaml:"properties" toml:"properties"`
	Events     []Component `yaml:"events" toml:"events"`
	// Components holds everything that is not an event. Names starting with
	// X- are vendor components, the rest must be iana-tokens.
	Components []Component `yaml:"components" toml:"components"`
}

// Component describes one component block.
type Component struct {
	Name       string      `yaml:"name" toml:"name"`
	Properties []Property  `yaml:"properties" toml:"properties"`
	Components []Component `yaml:"components" toml:"components"`
}

// Property describes one content line. Type selects how Value (or each of
// Values, for multi-valued properties) is parsed; it defaults to text.
type Property struct {
	Name   string   `yaml:"name" toml:"name"`
	Type   string   `yaml:"type" toml:"type"`
	Value  string   `yaml:"value" toml:"value"`
	Values []string `yaml:"values" toml:"values"`
	Params []Param  `yaml:"params" toml:"params"`
}

// Param describes one property parameter.
type Param struct {
	Name   string   `yaml:"name" toml:"name"`
	Value  string   `yaml:"value" toml:"value"`
	Values []string `yaml:"values" toml:"values"`
}

// FormatOf returns the descriptor format implied by a file name.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported descriptor file %q: expected .yaml, .yml or .toml", path)
}

// Load reads and decodes the descriptor file at path.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open descriptor: %w", err)
	}
	defer f.Close()

	file, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Decode decodes a descriptor from r. A leading byte order mark is skipped
// and unknown keys are rejected.
func Decode(r io.Reader, format Format) (*File, error) {
	data, err := io.ReadAll(utfbom.SkipOnly(r))
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("descriptor is empty")
	}

	var file File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("invalid YAML descriptor: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("invalid TOML descriptor: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported descriptor format %q", format)
	}
	return &file, nil
}
