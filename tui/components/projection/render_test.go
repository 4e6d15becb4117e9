package projection

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/projection/scene"
)

func TestViewShowsVisibleLayers(t *testing.T) {
	cfg := testConfig()
	cfg.Title = "Demo"
	m, err := New(cfg)
	require.NoError(t, err)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model := updated.(Model)

	view := model.View()
	assert.Contains(t, view, "Demo")
	assert.Contains(t, view, "panel 1/3")
	assert.Contains(t, view, "first panel")
	assert.Contains(t, view, "second panel")
	assert.Contains(t, view, "third panel")
}

func TestViewCullsPassedLayers(t *testing.T) {
	cfg := testConfig()
	cfg.Step = 100
	m, err := New(cfg)
	require.NoError(t, err)

	// Jump to the last panel; earlier layers are now behind the camera
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	model := updated.(Model)
	for model.Animating() {
		u, _ := model.Update(frameMsg{})
		model = u.(Model)
	}

	view := model.View()
	assert.Contains(t, view, "third panel")
	assert.NotContains(t, view, "first panel")
	assert.NotContains(t, view, "second panel")
}

func TestViewCullsBeyondFarPlane(t *testing.T) {
	cfg := testConfig()
	cfg.Distance = 60
	m, err := New(cfg)
	require.NoError(t, err)

	// At depth 0 with a 60-deep frustum, the layer at depth 100 is culled
	view := m.View()
	assert.Contains(t, view, "first panel")
	assert.Contains(t, view, "second panel")
	assert.NotContains(t, view, "third panel")
}

func TestDeeperLayersIndentFurther(t *testing.T) {
	m, err := New(testConfig())
	require.NoError(t, err)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model := updated.(Model)

	indentNear := model.indentFor(0)
	indentMid := model.indentFor(-50)
	indentFar := model.indentFor(-100)

	assert.Equal(t, 0, indentNear)
	assert.Greater(t, indentFar, indentMid)
	assert.Greater(t, indentMid, indentNear)
}

func TestIndentClampsAtFarPlane(t *testing.T) {
	m, err := New(testConfig())
	require.NoError(t, err)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model := updated.(Model)

	assert.Equal(t, model.indentFor(-model.distance), model.indentFor(-model.distance*2))
}

func TestVisibleRange(t *testing.T) {
	m, err := New(testConfig())
	require.NoError(t, err)

	assert.True(t, m.visible(0))
	assert.True(t, m.visible(-m.distance))
	assert.False(t, m.visible(-m.distance-1))
	assert.False(t, m.visible(1), "elements behind the camera are culled")
}

func TestViewFallsBackToIDForEmptyContent(t *testing.T) {
	m, err := New(Config{
		Root: &scene.Node{
			Children: []*scene.Node{
				{ID: "bare", Tags: []string{"depth0"}},
			},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, m.View(), "bare")
}

func TestViewRendersBareLayerList(t *testing.T) {
	// Layers given as id+depth only, no scene nodes behind them
	m, err := New(Config{Layers: []scene.Layer{
		{ID: "skyline", Depth: 0},
		{ID: "horizon", Depth: 50},
	}})
	require.NoError(t, err)

	view := m.View()
	assert.Contains(t, view, "skyline")
	assert.Contains(t, view, "panel 1/2")
}

func TestHelpOverlayReplacesView(t *testing.T) {
	m, err := New(testConfig())
	require.NoError(t, err)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model := updated.(Model)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	model = updated.(Model)

	view := model.View()
	assert.Contains(t, view, "Projection Navigator")
	assert.False(t, strings.Contains(view, "panel 1/3"))

	// Esc closes help
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = updated.(Model)
	assert.Contains(t, model.View(), "panel 1/3")
}
