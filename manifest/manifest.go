package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/vitalvas/oasgen/controller"
	"github.com/vitalvas/oasgen/routes"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for a manifest file extension that is
// not YAML, TOML or JSON.
var ErrUnsupportedFormat = errors.New("manifest: unsupported format")

// Format is a manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Route is one route entry of a manifest. Params, when present, replaces the
// parameter names extracted from Path.
type Route struct {
	Method  string   `yaml:"method" toml:"method" json:"method"`
	Path    string   `yaml:"path" toml:"path" json:"path"`
	Handler string   `yaml:"handler" toml:"handler" json:"handler"`
	Name    string   `yaml:"name" toml:"name" json:"name"`
	Params  []string `yaml:"params" toml:"params" json:"params"`
}

// Manifest declares an application's routes and the controllers that serve
// them.
type Manifest struct {
	Routes      []Route                 `yaml:"routes" toml:"routes" json:"routes"`
	Controllers []controller.Controller `yaml:"controllers" toml:"controllers" json:"controllers"`
}

// Load reads and parses a manifest file, choosing the decoder by extension.
func Load(path string) (*Manifest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a manifest. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Manifest, error) {
	var m Manifest

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return nil, err
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return &m, nil
}

// Catalog builds the controller catalog declared by the manifest.
func (m *Manifest) Catalog() (*controller.Catalog, error) {
	cat := controller.NewCatalog()
	for _, c := range m.Controllers {
		if err := cat.Add(c); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

// Descriptors registers the manifest routes in order and returns their
// descriptors.
func (m *Manifest) Descriptors() ([]routes.Descriptor, error) {
	reg := routes.NewRegistry()
	for i, r := range m.Routes {
		method, err := routes.ParseMethod(r.Method)
		if err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}

		route := reg.Handle(method, r.Path, r.Handler).Name(r.Name)
		if r.Params != nil {
			route.Params(r.Params...)
		}
	}
	return reg.Descriptors()
}
