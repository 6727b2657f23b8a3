// Package cache defines the failure modes of the response-cache subsystem.
package cache

import "fmt"

// ErrorKind identifies a cache failure mode.
type ErrorKind int

const (
	// KindBackend wraps a cache database failure.
	KindBackend ErrorKind = iota

	// KindJoin indicates a background cache task that failed to complete.
	KindJoin

	// KindResource wraps a resource-table failure.
	KindResource

	// KindOther wraps any other failure.
	KindOther

	// KindIO wraps an operating-system I/O failure.
	KindIO
)

// Error is the cache subsystem's error type.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindBackend:
		return fmt.Sprintf("cache backend error: %v", e.Err)
	case KindJoin:
		return "cache task failed to complete"
	case KindResource:
		return fmt.Sprintf("resource error: %v", e.Err)
	case KindOther:
		return fmt.Sprintf("%v", e.Err)
	case KindIO:
		return fmt.Sprintf("io error: %v", e.Err)
	default:
		return "unknown cache error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}
