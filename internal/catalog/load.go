package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrMalformed is returned by Parse when a payload cannot be turned into a catalog.
var ErrMalformed = errors.New("malformed catalog")

// Format identifies the encoding of a configuration payload.
type Format int

const (
	FormatYAML Format = iota // YAML, and JSON documents
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	default:
		return "yaml"
	}
}

// FormatFromPath picks a format from a file extension. Anything that is not
// .toml is decoded as YAML, which also covers JSON.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

//go:embed default.yaml
var defaultPayload []byte

var loadDefault = sync.OnceValue(func() Catalog {
	cat, err := Parse(defaultPayload, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return cat
})

// Default returns the built-in catalog.
func Default() Catalog {
	return loadDefault()
}

// Load decodes payload, falling back to Default when the payload is empty or
// malformed.
func Load(payload []byte, format Format) Catalog {
	cat, err := Parse(payload, format)
	if err != nil {
		return Default()
	}
	return cat
}

// document mirrors the configuration file. Pointers distinguish a missing
// key from an empty one.
type document struct {
	Categories *[]Category `yaml:"categories" toml:"categories"`
	Theme      *Theme      `yaml:"theme" toml:"theme"`
}

// Parse decodes payload strictly. Unknown fields are ignored and every text
// field may be empty, but the document must decode and carry a categories key.
func Parse(payload []byte, format Format) (Catalog, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return Catalog{}, fmt.Errorf("%w: empty payload", ErrMalformed)
	}

	var doc document
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(payload, &doc)
	default:
		err = yaml.Unmarshal(payload, &doc)
	}
	if err != nil {
		return Catalog{}, fmt.Errorf("%w: decoding %s: %v", ErrMalformed, format, err)
	}

	if doc.Categories == nil {
		return Catalog{}, fmt.Errorf("%w: missing categories", ErrMalformed)
	}

	cat := Catalog{Categories: *doc.Categories}
	if doc.Theme != nil {
		cat.Theme = *doc.Theme
	}

	return cat, nil
}
