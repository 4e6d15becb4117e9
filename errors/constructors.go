package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *ProjectionError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *ProjectionError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// SceneNotFound creates a scene file not found error
func SceneNotFound(path string) *ProjectionError {
	return New(ErrCodeSceneNotFound, fmt.Sprintf("scene file not found: %s", path)).
		WithDetail("path", path)
}

// SceneEmpty creates an error for a scene that produced no layers
func SceneEmpty(source string) *ProjectionError {
	return New(ErrCodeSceneEmpty, fmt.Sprintf("scene '%s' contains no usable layers", source)).
		WithDetail("source", source)
}

// DuplicateLayer creates an error for a layer id that appears more than once
func DuplicateLayer(id string) *ProjectionError {
	return New(ErrCodeSceneDuplicateID, fmt.Sprintf("duplicate layer id '%s'", id)).
		WithDetail("layer", id)
}

// DepthParse creates an error for a depth annotation that is not an integer
func DepthParse(nodeID, token string, err error) *ProjectionError {
	return Wrap(err, ErrCodeDepthParse,
		fmt.Sprintf("node '%s' has malformed depth annotation '%s'", nodeID, token)).
		WithDetail("node", nodeID).
		WithDetail("token", token)
}

// DepthMissing creates an error for a layer with no depth annotation
func DepthMissing(nodeID string) *ProjectionError {
	return New(ErrCodeDepthMissing, fmt.Sprintf("node '%s' carries no depth annotation", nodeID)).
		WithDetail("node", nodeID)
}
