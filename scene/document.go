package scene

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/grovetools/projection/errors"
)

// Document is a scene file: a node tree plus per-scene settings.
type Document struct {
	Version string `yaml:"version,omitempty"`

	// Prefix overrides the configured depth annotation prefix for this
	// scene only.
	Prefix string `yaml:"prefix,omitempty"`

	Root *Node `yaml:"root"`
}

// LoadFile reads and parses a scene YAML document.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.SceneNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to read scene file").
			WithDetail("path", path)
	}
	return Parse(data)
}

// Parse parses a scene document from YAML bytes.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse scene document")
	}
	if doc.Root == nil {
		return nil, errors.ConfigInvalid("scene document has no root node")
	}
	return &doc, nil
}

// Build constructs the layer store for the document, honoring the
// document's own prefix override when present.
func (d *Document) Build(prefix string) (*Store, error) {
	if d.Prefix != "" {
		prefix = d.Prefix
	}
	return Build(d.Root, prefix)
}
