package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteScene writes a scene document into dir and returns its path.
func WriteScene(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "scene.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteConfig writes a projection.yml into dir and returns its path.
func WriteConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "projection.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Chdir changes into dir for the duration of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(oldWd)
	})
}
