package menucfg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a definition document encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Load reads a definition file, choosing the decoder by extension. The
// result is decoded but not validated; Builder.Build validates, and
// Definition.Validate reports problems individually.
func Load(path string) (*Definition, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, NewDefinitionError("detect", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDefinitionError("read", err)
	}

	return Parse(data, format)
}

// Parse decodes a definition from raw bytes in the given format.
func Parse(data []byte, format Format) (*Definition, error) {
	var def Definition
	var err error

	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &def)
	case FormatYAML:
		err = yaml.Unmarshal(data, &def)
	default:
		err = ErrUnknownFormat
	}
	if err != nil {
		return nil, NewDefinitionError("decode", err)
	}

	return &def, nil
}
