package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for the projection configuration.
// It reflects the Config struct from types.go but excludes the 'Extensions'
// field, which holds free-form tool sections.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Unknown top-level keys are extension sections, so they stay allowed.
		AllowAdditionalProperties: true,
		// Expand struct references instead of using $ref for a cleaner schema.
		ExpandedStruct: true,
		// Use YAML field names for property names
		FieldNameTag: "yaml",
	}

	type BaseConfig struct {
		Version     string            `yaml:"version" jsonschema:"description=Configuration version (e.g. '1.0')"`
		Scene       SceneConfig       `yaml:"scene,omitempty" jsonschema:"description=Scene source and depth annotation settings"`
		Animation   AnimationConfig   `yaml:"animation,omitempty" jsonschema:"description=Depth animation settings"`
		Perspective PerspectiveConfig `yaml:"perspective,omitempty" jsonschema:"description=Projection perspective settings"`
	}

	schema := r.Reflect(&BaseConfig{})
	schema.Title = "Projection Configuration"
	schema.Description = "Schema for projection.yml properties."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
