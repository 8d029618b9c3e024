package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mozilla-ai/gnuusage/internal/errors"
)

// Format represents the encoding of a usage document on disk.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath determines the document format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: '%s' (must be one of .toml, .yaml, .yml, .json)", errors.ErrUnsupportedFormat, ext)
	}
}

// decode unmarshals data into v using the format's decoder.
func (f Format) decode(data []byte, v any) error {
	switch f {
	case FormatTOML:
		_, err := toml.Decode(string(data), v)
		return err
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	case FormatJSON:
		// Unmarshal rejects anything after the top level value.
		return json.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: '%s'", errors.ErrUnsupportedFormat, f)
	}
}

// skeleton returns the content written by Init for a new document.
func (f Format) skeleton() string {
	switch f {
	case FormatYAML:
		return `program: my-program
doc: Describe what my-program does.
options:
  - short: h
    long: help
    doc: display this help and exit
`
	case FormatJSON:
		return `{
  "program": "my-program",
  "doc": "Describe what my-program does.",
  "options": [
    {
      "short": "h",
      "long": "help",
      "doc": "display this help and exit"
    }
  ]
}
`
	default:
		return `program = "my-program"
doc = "Describe what my-program does."

[[options]]
short = "h"
long = "help"
doc = "display this help and exit"
`
	}
}
