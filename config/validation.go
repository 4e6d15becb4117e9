package config

import (
	"fmt"
	"regexp"

	"github.com/grovetools/projection/errors"
)

var layerIDRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Scene.Path != "" && len(c.Scene.Layers) > 0 {
		return errors.New(errors.ErrCodeConfigValidation,
			"scene.path and scene.layers are mutually exclusive")
	}

	if c.Scene.Prefix == "" {
		return errors.New(errors.ErrCodeConfigValidation, "scene.prefix cannot be empty")
	}

	if c.Animation.Step <= 0 {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("animation.step must be positive, got %d", c.Animation.Step)).
			WithDetail("step", c.Animation.Step)
	}

	if c.Animation.FPS <= 0 || c.Animation.FPS > 240 {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("animation.fps must be between 1 and 240, got %d", c.Animation.FPS)).
			WithDetail("fps", c.Animation.FPS)
	}

	if c.Perspective.Distance <= 0 {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("perspective.distance must be positive, got %d", c.Perspective.Distance)).
			WithDetail("distance", c.Perspective.Distance)
	}

	if c.Perspective.Origin < 0 || c.Perspective.Origin > 1 {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("perspective.origin must be between 0 and 1, got %g", c.Perspective.Origin)).
			WithDetail("origin", c.Perspective.Origin)
	}

	// Explicit layers are validated strictly: a missing id or depth is a
	// configuration failure, not a skippable parse warning.
	seen := make(map[string]bool, len(c.Scene.Layers))
	for i, layer := range c.Scene.Layers {
		if err := validateLayer(i, &layer); err != nil {
			return err
		}
		if seen[layer.ID] {
			return errors.Wrap(errors.DuplicateLayer(layer.ID), errors.ErrCodeConfigValidation,
				fmt.Sprintf("invalid layer configuration at index %d", i))
		}
		seen[layer.ID] = true
	}

	return nil
}

func validateLayer(index int, layer *LayerConfig) error {
	if layer.ID == "" {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("layer at index %d has no id", index)).
			WithDetail("index", index)
	}
	if !layerIDRegex.MatchString(layer.ID) {
		return errors.New(errors.ErrCodeConfigValidation,
			"layer id must start with a letter and contain only letters, numbers, underscores, and hyphens").
			WithDetail("id", layer.ID)
	}
	if layer.Depth == nil {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("layer '%s' has no depth", layer.ID)).
			WithDetail("id", layer.ID)
	}
	return nil
}
