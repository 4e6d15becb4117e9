package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Config is the root of projection.yml.
type Config struct {
	Version     string            `yaml:"version" jsonschema:"description=Configuration version (e.g. '1.0')"`
	Scene       SceneConfig       `yaml:"scene,omitempty" jsonschema:"description=Scene source and depth annotation settings"`
	Animation   AnimationConfig   `yaml:"animation,omitempty" jsonschema:"description=Depth animation settings"`
	Perspective PerspectiveConfig `yaml:"perspective,omitempty" jsonschema:"description=Projection perspective settings"`

	// Extensions holds tool-specific configuration sections (logging, tui, ...).
	// Decoded on demand via UnmarshalExtension.
	Extensions map[string]interface{} `yaml:",inline" jsonschema:"-"`
}

// SceneConfig selects where layers come from and how depth annotations are read.
type SceneConfig struct {
	// Path is the scene document to load. Mutually exclusive with Layers.
	Path string `yaml:"path,omitempty" jsonschema:"description=Path to a scene YAML document"`

	// Layers is an explicit layer list. Mutually exclusive with Path.
	// Unlike discovered layers, explicit layers are validated strictly.
	Layers []LayerConfig `yaml:"layers,omitempty" jsonschema:"description=Explicit layer list (validated strictly)"`

	// Prefix is the depth annotation prefix on node tags (default "depth").
	Prefix string `yaml:"prefix,omitempty" jsonschema:"description=Depth annotation prefix (default 'depth')"`

	// Watch enables live reload of the scene file.
	Watch bool `yaml:"watch,omitempty" jsonschema:"description=Reload the scene document when it changes on disk"`
}

// LayerConfig is an explicitly configured layer.
type LayerConfig struct {
	ID      string `yaml:"id" jsonschema:"required,description=Unique layer identifier"`
	Depth   *int   `yaml:"depth" jsonschema:"required,description=Depth coordinate along the z axis"`
	Content string `yaml:"content,omitempty" jsonschema:"description=Text content rendered for this layer"`
}

// AnimationConfig controls the depth animation driver.
type AnimationConfig struct {
	// Step is the maximum per-frame change in current depth (default 10).
	Step int `yaml:"step,omitempty" jsonschema:"description=Maximum per-frame depth change (default 10)"`

	// FPS is the animation frame cadence (default 60).
	FPS int `yaml:"fps,omitempty" jsonschema:"description=Animation frames per second (default 60)"`
}

// PerspectiveConfig controls how depth offsets map to the rendered frame.
type PerspectiveConfig struct {
	// Distance is the depth range considered visible behind the current
	// position (default 300). Elements further away are culled.
	Distance int `yaml:"distance,omitempty" jsonschema:"description=Visible depth range behind the camera (default 300)"`

	// Origin shifts the horizontal vanishing point, 0.0 (left) to 1.0
	// (right), default 0.5.
	Origin float64 `yaml:"origin,omitempty" jsonschema:"description=Horizontal vanishing point between 0 and 1 (default 0.5)"`
}

// DefaultPrefix is the depth annotation prefix used when none is configured.
const DefaultPrefix = "depth"

// DefaultStep is the per-frame depth increment used when none is configured.
const DefaultStep = 10

// DefaultFPS is the animation cadence used when none is configured.
const DefaultFPS = 60

// DefaultDistance is the visible depth range used when none is configured.
const DefaultDistance = 300

// ApplyDefaults fills in default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.Scene.Prefix == "" {
		c.Scene.Prefix = DefaultPrefix
	}
	if c.Animation.Step == 0 {
		c.Animation.Step = DefaultStep
	}
	if c.Animation.FPS == 0 {
		c.Animation.FPS = DefaultFPS
	}
	if c.Perspective.Distance == 0 {
		c.Perspective.Distance = DefaultDistance
	}
	if c.Perspective.Origin == 0 {
		c.Perspective.Origin = 0.5
	}
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded projection.yml into the provided target struct. The target must be
// a pointer. This provides a type-safe way for tools to access their custom
// configuration sections.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	// Use mapstructure to decode the generic map[string]interface{}
	// into the strongly-typed target struct, keyed by yaml tags.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
