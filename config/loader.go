package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/grovetools/projection/errors"
	"github.com/grovetools/projection/pkg/paths"
	"github.com/grovetools/projection/schema"
)

// ConfigFileName is the canonical configuration file name.
const ConfigFileName = "projection.yml"

// Load reads and parses a projection.yml from an explicit path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read configuration")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse configuration").
			WithDetail("path", path)
	}

	// Validate the raw document against the embedded schema before defaults
	// fill in the gaps. The schema sees the document's own keys, so it
	// catches wrong types and misspelled fields the struct decode ignores.
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse configuration").
			WithDetail("path", path)
	}

	if raw != nil {
		validator, err := schema.NewValidator()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create schema validator")
		}
		if err := validator.Validate(raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "configuration does not match schema").
				WithDetail("path", path)
		}
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// LoadDefault searches for projection.yml starting from the current working
// directory and walking up, then loads it.
func LoadDefault() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to determine working directory")
	}

	path, err := FindConfigFile(dir)
	if err != nil {
		return nil, err
	}

	return Load(path)
}

// FindConfigFile walks up from dir looking for projection.yml, falling back
// to the global config directory.
func FindConfigFile(dir string) (string, error) {
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if global := paths.ConfigDir(); global != "" {
		candidate := filepath.Join(global, ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.ConfigNotFound(ConfigFileName)
}
