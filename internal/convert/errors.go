package convert

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation marks job parameters rejected before any invocation.
	ErrValidation = errors.New("validation error")
	// ErrExternalTool marks a non-zero exit from the external binary.
	ErrExternalTool = errors.New("external tool error")
	// ErrOutputBusy marks an output path locked by another conversion.
	ErrOutputBusy = errors.New("output busy")
)

// wrap tags an error with one of the sentinel markers above so callers can
// classify failures with errors.Is.
func wrap(marker error, operation, message string, err error) error {
	detail := operation
	if message = strings.TrimSpace(message); message != "" {
		detail = detail + ": " + message
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}
