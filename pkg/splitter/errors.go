package splitter

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/splitter/pkg/splitter/layout"
)

// Sentinel errors for common conditions.
var (
	// ErrIndexOutOfRange indicates a registry lookup outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidTransition indicates a request the state machine ignored,
	// such as Activate while already open. It is only ever logged: rejected
	// requests are routine double-tap races, not failures.
	ErrInvalidTransition = errors.New("invalid state transition")
)

// ConfigurationError reports missing or contradictory configuration: mode
// parameters that do not fit the display mode, an element provider that was
// never set, a provider reporting a negative count.
type ConfigurationError struct {
	Field  string // Configuration field at fault (e.g., "columns", "provider")
	Reason string // Human readable description
	Err    error  // Underlying error, if any
}

func (e *ConfigurationError) Error() string {
	msg := "splitter: configuration"
	if e.Field != "" {
		msg += ": " + e.Field
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func configError(field, reason string, err error) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: reason, Err: err}
}

// IsConfigurationError checks if an error is a configuration error, including
// display validation failures reported by the layout package.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr) || errors.Is(err, layout.ErrInvalidDisplay)
}

// IndexOutOfRangeError is returned by Registry.Get for an index outside the registry.
type IndexOutOfRangeError struct {
	Index int
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("splitter: index %d out of range [0, %d)", e.Index, e.Count)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// InfrastructureError represents a failure in the host layer (rendering
// failed, a texture or font could not be loaded, an input device vanished).
// These errors are typically fatal or require host-level recovery.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "render", "load_icon")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("splitter: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("splitter: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
