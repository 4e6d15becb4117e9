package state

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/grovetools/projection/util/pathutil"
)

// State represents the local projection state as a generic map of key-value
// pairs. Tools built on the widget can store arbitrary state data alongside
// the values the viewer keeps for itself.
type State map[string]interface{}

// stateFilePath returns the path to the state file.
// The state file is located in .projection/state.yml in the current working
// directory, so each project keeps its own independent state.
func stateFilePath() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get current directory: %w", err)
	}

	return filepath.Join(cwd, ".projection", "state.yml"), nil
}

// Load loads the state from the state file.
// Returns an empty state if the file doesn't exist.
func Load() (State, error) {
	path, err := stateFilePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty state if file doesn't exist
			return make(State), nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var state State
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse state file: %w", err)
	}

	if state == nil {
		state = make(State)
	}

	return state, nil
}

// Save saves the state to the state file.
func Save(state State) error {
	path, err := stateFilePath()
	if err != nil {
		return err
	}

	// Ensure .projection directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}

// Get retrieves a value from the state by key.
// Returns the value and true if found, nil and false otherwise.
func Get(key string) (interface{}, bool, error) {
	state, err := Load()
	if err != nil {
		return nil, false, err
	}

	val, ok := state[key]
	return val, ok, nil
}

// Set sets a value in the state.
func Set(key string, value interface{}) error {
	state, err := Load()
	if err != nil {
		return err
	}

	state[key] = value
	return Save(state)
}

// Delete removes a key from the state.
func Delete(key string) error {
	state, err := Load()
	if err != nil {
		return err
	}

	delete(state, key)
	return Save(state)
}

// panelKey returns the state key holding the last viewed panel for a scene.
// The scene path is canonicalized so the key is stable regardless of how the
// viewer was invoked.
func panelKey(scenePath string) string {
	norm, err := pathutil.NormalizeForLookup(scenePath)
	if err != nil {
		norm = scenePath
	}
	return "last-panel:" + norm
}

// LastPanel returns the last viewed panel index for the given scene path.
// Returns -1 and false if no panel has been recorded.
func LastPanel(scenePath string) (int, bool, error) {
	val, ok, err := Get(panelKey(scenePath))
	if err != nil || !ok {
		return -1, false, err
	}

	// yaml decodes integers as int
	switch v := val.(type) {
	case int:
		return v, true, nil
	case int64:
		return int(v), true, nil
	case float64:
		return int(v), true, nil
	}
	return -1, false, nil
}

// SetLastPanel records the last viewed panel index for the given scene path.
func SetLastPanel(scenePath string, panel int) error {
	return Set(panelKey(scenePath), panel)
}
