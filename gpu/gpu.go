// Package gpu defines the failure modes of the GPU subsystem. GPU errors
// self-report their class through the ErrorClass capability, so the
// subsystem can evolve its variant set without the registry changing.
package gpu

import "fmt"

// ErrorKind identifies a GPU failure mode.
type ErrorKind int

const (
	// KindValidation indicates a command that failed validation.
	KindValidation ErrorKind = iota

	// KindOutOfMemory indicates the device ran out of memory.
	KindOutOfMemory

	// KindInternal indicates an internal driver failure.
	KindInternal

	// KindDeviceLost indicates the device was lost.
	KindDeviceLost
)

// Error is the GPU subsystem's error type.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindValidation:
		return fmt.Sprintf("validation error: %s", e.Message)
	case KindOutOfMemory:
		return "out of memory"
	case KindInternal:
		return fmt.Sprintf("internal gpu error: %s", e.Message)
	case KindDeviceLost:
		return "device lost"
	default:
		return "unknown gpu error"
	}
}

// ErrorClass reports the exception class for this error. Validation
// failures surface as script type errors; everything else is a platform
// operation error.
func (e *Error) ErrorClass() string {
	if e.Kind == KindValidation {
		return "TypeError"
	}
	return "DOMExceptionOperationError"
}
