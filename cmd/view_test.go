package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/projection/animator"
	"github.com/grovetools/projection/config"
	"github.com/grovetools/projection/scene"
	"github.com/grovetools/projection/state"
	"github.com/grovetools/projection/testutil"
	proj "github.com/grovetools/projection/tui/components/projection"
)

func intPtr(v int) *int { return &v }

func demoLayers() []scene.Layer {
	return []scene.Layer{
		{ID: "a", Depth: 0, Node: &scene.Node{ID: "a", Content: "first"}},
		{ID: "b", Depth: 100, Node: &scene.Node{ID: "b", Content: "second"}},
		{ID: "c", Depth: 200, Node: &scene.Node{ID: "c", Content: "third"}},
	}
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	t.Setenv("PROJECTION_HOME", t.TempDir())
	testutil.Chdir(t, t.TempDir())

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPrefix, cfg.Scene.Prefix)
	assert.Equal(t, config.DefaultStep, cfg.Animation.Step)
}

func TestLoadConfigExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteConfig(t, dir, `
version: "1.0"
animation:
  step: 25
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Animation.Step)
	assert.Equal(t, config.DefaultFPS, cfg.Animation.FPS)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteConfig(t, dir, `
version: "1.0"
animation:
  step: -5
`)

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestConfigLayers(t *testing.T) {
	cfg := &config.Config{}
	cfg.Scene.Layers = []config.LayerConfig{
		{ID: "far", Depth: intPtr(200), Content: "far away"},
		{ID: "near", Depth: intPtr(0), Content: "up close"},
	}

	layers := configLayers(cfg)
	require.Len(t, layers, 2)
	assert.Equal(t, "far", layers[0].ID)
	assert.Equal(t, 200, layers[0].Depth)
	assert.Equal(t, "up close", layers[1].Node.Content)
}

func TestViewModelRestoresLastPanel(t *testing.T) {
	testutil.Chdir(t, t.TempDir())

	widget, err := proj.New(proj.Config{Layers: demoLayers()})
	require.NoError(t, err)

	require.NoError(t, state.SetLastPanel("scene.yml", 2))

	m := viewModel{widget: widget, scenePath: "scene.yml", restore: true}
	updated, cmd := m.Update(restoreMsg{})
	require.NotNil(t, cmd)

	vm := updated.(viewModel)
	assert.True(t, vm.widget.Animating())
}

func TestViewModelIgnoresStaleRestore(t *testing.T) {
	testutil.Chdir(t, t.TempDir())

	widget, err := proj.New(proj.Config{Layers: demoLayers()})
	require.NoError(t, err)

	// Remembered panel no longer exists in the scene
	require.NoError(t, state.SetLastPanel("scene.yml", 7))

	m := viewModel{widget: widget, scenePath: "scene.yml", restore: true}
	updated, cmd := m.Update(restoreMsg{})
	assert.Nil(t, cmd)

	vm := updated.(viewModel)
	assert.False(t, vm.widget.Animating())
}

func TestViewModelPersistsPanelOnMoveFinished(t *testing.T) {
	testutil.Chdir(t, t.TempDir())

	widget, err := proj.New(proj.Config{Layers: demoLayers()})
	require.NoError(t, err)

	m := viewModel{widget: widget, scenePath: "scene.yml"}
	_, _ = m.Update(proj.MoveFinishedMsg{Frame: animator.Frame{Current: 100, Target: 100, Panel: 1}})

	panel, ok, err := state.LastPanel("scene.yml")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, panel)
}
