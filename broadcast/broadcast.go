// Package broadcast defines the failure modes of the broadcast-channel subsystem.
package broadcast

import "fmt"

// ErrorKind identifies a broadcast-channel failure mode.
type ErrorKind int

const (
	// KindResource wraps a resource-table failure.
	KindResource ErrorKind = iota

	// KindSendFailed indicates a message that could not be delivered.
	KindSendFailed

	// KindChannelClosed indicates a send on a closed channel.
	KindChannelClosed

	// KindOther wraps any other failure.
	KindOther
)

// Error is the broadcast-channel subsystem's error type.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindResource:
		return fmt.Sprintf("resource error: %v", e.Err)
	case KindSendFailed:
		return "failed to send message"
	case KindChannelClosed:
		return "broadcast channel is closed"
	case KindOther:
		return fmt.Sprintf("%v", e.Err)
	default:
		return "unknown broadcast channel error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}
