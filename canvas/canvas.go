// Package canvas defines the failure modes of the canvas and image subsystem.
package canvas

import "fmt"

// ErrorKind identifies a canvas failure mode.
type ErrorKind int

const (
	// KindUnsupportedColorType indicates an image color type the canvas
	// cannot represent.
	KindUnsupportedColorType ErrorKind = iota

	// KindImage wraps an image decode failure.
	KindImage
)

// Error is the canvas subsystem's error type. ColorType names the rejected
// color type for KindUnsupportedColorType.
type Error struct {
	Kind      ErrorKind
	ColorType string
	Err       error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnsupportedColorType:
		return fmt.Sprintf("unsupported color type: %s", e.ColorType)
	case KindImage:
		return fmt.Sprintf("image error: %v", e.Err)
	default:
		return "unknown canvas error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}
