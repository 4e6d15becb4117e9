package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/projection/errors"
)

const sampleScene = `
version: "1.0"
root:
  id: deck
  children:
    - id: title
      tags: [depth0]
      content: Welcome
    - id: hills
      tags: [depth50]
      content: Rolling hills
      children:
        - id: tree
          content: A tree
    - id: sky
      tags: [depth100]
      content: Clear sky
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleScene))
	require.NoError(t, err)
	require.NotNil(t, doc.Root)
	assert.Equal(t, "deck", doc.Root.ID)
	assert.Len(t, doc.Root.Children, 3)
}

func TestParseNoRoot(t *testing.T) {
	_, err := Parse([]byte("version: \"1.0\"\n"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("root: [unclosed"))
	assert.Error(t, err)
}

func TestDocumentBuild(t *testing.T) {
	doc, err := Parse([]byte(sampleScene))
	require.NoError(t, err)

	store, err := doc.Build("depth")
	require.NoError(t, err)
	require.Equal(t, 3, store.Len())
	assert.Equal(t, "title", store.At(0).ID)
	assert.Equal(t, 0, store.MinDepth())
}

func TestDocumentPrefixOverride(t *testing.T) {
	doc, err := Parse([]byte(`
prefix: z
root:
  children:
    - id: only
      tags: [z15]
`))
	require.NoError(t, err)

	// The document's own prefix wins over the configured one
	store, err := doc.Build("depth")
	require.NoError(t, err)
	assert.Equal(t, 15, store.At(0).Depth)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScene), 0644))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "deck", doc.Root.ID)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeSceneNotFound, errors.GetCode(err))
}
