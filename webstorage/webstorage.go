// Package webstorage defines the failure modes of the web storage subsystem.
package webstorage

import "fmt"

// ErrorKind identifies a web storage failure mode.
type ErrorKind int

const (
	// KindContextNotSupported indicates storage is unavailable in this context.
	KindContextNotSupported ErrorKind = iota

	// KindBackend wraps a storage database failure.
	KindBackend

	// KindIO wraps an operating-system I/O failure.
	KindIO

	// KindStorageExceeded indicates the storage quota was exceeded.
	KindStorageExceeded
)

// Error is the web storage subsystem's error type.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindContextNotSupported:
		return "localStorage is not supported in this context"
	case KindBackend:
		return fmt.Sprintf("storage backend error: %v", e.Err)
	case KindIO:
		return fmt.Sprintf("io error: %v", e.Err)
	case KindStorageExceeded:
		return "exceeded maximum storage size"
	default:
		return "unknown web storage error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}
