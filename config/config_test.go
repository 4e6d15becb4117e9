package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/projection/errors"
)

const sampleConfig = `
version: "1.0"
scene:
  path: deck.yml
  prefix: z
  watch: true
animation:
  step: 25
perspective:
  distance: 500
logging:
  level: debug
  format:
    preset: simple
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "deck.yml", cfg.Scene.Path)
	assert.Equal(t, "z", cfg.Scene.Prefix)
	assert.True(t, cfg.Scene.Watch)
	assert.Equal(t, 25, cfg.Animation.Step)
	// Unset fields pick up defaults
	assert.Equal(t, DefaultFPS, cfg.Animation.FPS)
	assert.Equal(t, 500, cfg.Perspective.Distance)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigNotFound, errors.GetCode(err))
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
}

func TestLoadRejectsSchemaViolations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	// fps beyond the schema's maximum and a misspelled scene key
	require.NoError(t, os.WriteFile(path, []byte(`
version: "1.0"
scene:
  pathh: deck.yml
animation:
  fps: 500
`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigValidation, errors.GetCode(err))
}

func TestFindConfigFileWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))
	path := filepath.Join(root, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: \"1.0\"\n"), 0644))

	found, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindConfigFileMissing(t *testing.T) {
	// Point the global fallback at an empty directory
	t.Setenv("PROJECTION_HOME", t.TempDir())

	_, err := FindConfigFile(t.TempDir())
	assert.Error(t, err)
}

func TestFindConfigFileGlobalFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("PROJECTION_HOME", home)

	globalDir := filepath.Join(home, "config", "projection")
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	path := filepath.Join(globalDir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: \"1.0\"\n"), 0644))

	found, err := FindConfigFile(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestUnmarshalExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	var logCfg struct {
		Level  string `yaml:"level"`
		Format struct {
			Preset string `yaml:"preset"`
		} `yaml:"format"`
	}
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "debug", logCfg.Level)
	assert.Equal(t, "simple", logCfg.Format.Preset)

	// Missing keys leave the target zero-valued
	var other struct {
		Anything string `yaml:"anything"`
	}
	require.NoError(t, cfg.UnmarshalExtension("absent", &other))
	assert.Empty(t, other.Anything)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, "Projection Configuration")
	assert.Contains(t, s, "animation")
	assert.Contains(t, s, "perspective")
	assert.NotContains(t, s, "Extensions")
}
