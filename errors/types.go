package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Scene errors
	ErrCodeSceneNotFound    ErrorCode = "SCENE_NOT_FOUND"
	ErrCodeSceneEmpty       ErrorCode = "SCENE_EMPTY"
	ErrCodeSceneDuplicateID ErrorCode = "SCENE_DUPLICATE_ID"
	ErrCodeDepthParse       ErrorCode = "DEPTH_PARSE"
	ErrCodeDepthMissing     ErrorCode = "DEPTH_MISSING"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// ProjectionError represents a structured error with context
type ProjectionError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *ProjectionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ProjectionError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *ProjectionError) WithDetail(key string, value interface{}) *ProjectionError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *ProjectionError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new ProjectionError
func New(code ErrorCode, message string) *ProjectionError {
	return &ProjectionError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a ProjectionError
func Wrap(err error, code ErrorCode, message string) *ProjectionError {
	return &ProjectionError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific ProjectionError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	projErr, ok := err.(*ProjectionError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return projErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	projErr, ok := err.(*ProjectionError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return projErr.Code
}
