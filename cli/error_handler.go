package cli

import (
	"fmt"
	"os"

	"github.com/grovetools/projection/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ Configuration not found. Create a projection.yml or pass a scene file directly.\n")
		return err

	case errors.ErrCodeSceneNotFound:
		if projErr, ok := err.(*errors.ProjectionError); ok {
			fmt.Fprintf(os.Stderr, "❌ Scene file '%s' not found\n", projErr.Details["path"])
		}
		return err

	case errors.ErrCodeSceneEmpty:
		fmt.Fprintf(os.Stderr, "❌ Scene contains no navigable layers\n")
		fmt.Fprintf(os.Stderr, "Tag at least one element with a depth annotation, e.g. 'depth0'.\n")
		return err

	case errors.ErrCodeDepthParse:
		if projErr, ok := err.(*errors.ProjectionError); ok {
			fmt.Fprintf(os.Stderr, "❌ Malformed depth annotation '%s' on node '%s'\n",
				projErr.Details["token"], projErr.Details["node"])
			fmt.Fprintf(os.Stderr, "Annotations are a prefix followed by an integer, e.g. 'depth-40' or 'depth120'.\n")
		}
		return err

	case errors.ErrCodeSceneDuplicateID:
		if projErr, ok := err.(*errors.ProjectionError); ok {
			fmt.Fprintf(os.Stderr, "❌ Duplicate layer id '%s'\n", projErr.Details["layer"])
		}
		return err

	default:
		// Generic error handling
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		// If verbose mode, show full error details
		if h.Verbose {
			if projErr, ok := err.(*errors.ProjectionError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", projErr.ToJSON())
			}
		}
		return err
	}
}
