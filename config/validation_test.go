package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grovetools/projection/errors"
)

func intPtr(v int) *int { return &v }

func TestValidateLayerID(t *testing.T) {
	testCases := []struct {
		name  string
		id    string
		valid bool
	}{
		{"valid simple", "intro", true},
		{"valid with numbers", "panel2", true},
		{"valid with dash", "far-hills", true},
		{"valid with underscore", "far_hills", true},
		{"invalid starts with number", "2panel", false},
		{"invalid special char", "panel@1", false},
		{"invalid space", "far hills", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateLayer(0, &LayerConfig{ID: tc.id, Depth: intPtr(0)})
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	// Valid config
	valid := &Config{
		Version: "1.0",
		Scene: SceneConfig{
			Prefix: "depth",
			Layers: []LayerConfig{
				{ID: "a", Depth: intPtr(0)},
				{ID: "b", Depth: intPtr(50)},
			},
		},
		Animation:   AnimationConfig{Step: 10, FPS: 60},
		Perspective: PerspectiveConfig{Distance: 300, Origin: 0.5},
	}
	assert.NoError(t, valid.Validate())

	// Empty prefix
	invalid := *valid
	invalid.Scene.Prefix = ""
	assert.Error(t, invalid.Validate())

	// Non-positive step
	invalid = *valid
	invalid.Animation.Step = 0
	assert.Error(t, invalid.Validate())

	invalid = *valid
	invalid.Animation.Step = -5
	assert.Error(t, invalid.Validate())

	// Layer without depth
	invalid = *valid
	invalid.Scene = SceneConfig{
		Prefix: "depth",
		Layers: []LayerConfig{{ID: "a"}},
	}
	err := invalid.Validate()
	assert.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigValidation, errors.GetCode(err))

	// Duplicate layer ids
	invalid = *valid
	invalid.Scene = SceneConfig{
		Prefix: "depth",
		Layers: []LayerConfig{
			{ID: "a", Depth: intPtr(0)},
			{ID: "a", Depth: intPtr(50)},
		},
	}
	assert.Error(t, invalid.Validate())

	// Path and layers together
	invalid = *valid
	invalid.Scene.Path = "deck.yml"
	assert.Error(t, invalid.Validate())
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, "1.0", cfg.Version)
	assert.Equal(t, DefaultPrefix, cfg.Scene.Prefix)
	assert.Equal(t, DefaultStep, cfg.Animation.Step)
	assert.Equal(t, DefaultFPS, cfg.Animation.FPS)
	assert.Equal(t, DefaultDistance, cfg.Perspective.Distance)
	assert.Equal(t, 0.5, cfg.Perspective.Origin)

	// Defaults produce a valid config
	assert.NoError(t, cfg.Validate())
}
