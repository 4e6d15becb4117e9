package state

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStateOperations(t *testing.T) {
	// Create a temporary directory for testing
	tmpDir, err := os.MkdirTemp("", "projection-state-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Change to temp directory
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	defer os.Chdir(oldWd)

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}

	t.Run("Load empty state", func(t *testing.T) {
		state, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if state == nil {
			t.Fatal("Load() returned nil state")
		}
		if len(state) != 0 {
			t.Errorf("Load() returned non-empty state: %v", state)
		}
	})

	t.Run("Set and Get", func(t *testing.T) {
		if err := Set("test.key", "test-value"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		val, ok, err := Get("test.key")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !ok {
			t.Fatal("Get() did not find key")
		}
		if val != "test-value" {
			t.Errorf("Get() = %v, want test-value", val)
		}
	})

	t.Run("Get missing key", func(t *testing.T) {
		_, ok, err := Get("does.not.exist")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if ok {
			t.Error("Get() found a key that was never set")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := Set("test.delete", 42); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if err := Delete("test.delete"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}

		_, ok, err := Get("test.delete")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if ok {
			t.Error("Get() found key after Delete()")
		}
	})

	t.Run("State file location", func(t *testing.T) {
		if err := Set("test.location", true); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		path := filepath.Join(tmpDir, ".projection", "state.yml")
		if _, err := os.Stat(path); err != nil {
			t.Errorf("state file not found at %s: %v", path, err)
		}
	})
}

func TestLastPanel(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "projection-state-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	defer os.Chdir(oldWd)

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}

	t.Run("unrecorded scene", func(t *testing.T) {
		panel, ok, err := LastPanel("scene.yml")
		if err != nil {
			t.Fatalf("LastPanel() error = %v", err)
		}
		if ok {
			t.Error("LastPanel() found a panel for an unrecorded scene")
		}
		if panel != -1 {
			t.Errorf("LastPanel() = %d, want -1", panel)
		}
	})

	t.Run("record and read back", func(t *testing.T) {
		if err := SetLastPanel("scene.yml", 3); err != nil {
			t.Fatalf("SetLastPanel() error = %v", err)
		}

		panel, ok, err := LastPanel("scene.yml")
		if err != nil {
			t.Fatalf("LastPanel() error = %v", err)
		}
		if !ok {
			t.Fatal("LastPanel() did not find recorded panel")
		}
		if panel != 3 {
			t.Errorf("LastPanel() = %d, want 3", panel)
		}
	})

	t.Run("relative and absolute paths share a key", func(t *testing.T) {
		if err := SetLastPanel("other.yml", 1); err != nil {
			t.Fatalf("SetLastPanel() error = %v", err)
		}

		abs, err := filepath.Abs("other.yml")
		if err != nil {
			t.Fatalf("Abs() error = %v", err)
		}
		panel, ok, err := LastPanel(abs)
		if err != nil {
			t.Fatalf("LastPanel() error = %v", err)
		}
		if !ok {
			t.Fatal("LastPanel() did not resolve absolute path to same key")
		}
		if panel != 1 {
			t.Errorf("LastPanel() = %d, want 1", panel)
		}
	})
}
