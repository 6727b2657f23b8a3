// Package cron defines the failure modes of the scheduled-task subsystem.
package cron

import "fmt"

// ErrorKind identifies a scheduled-task failure mode.
type ErrorKind int

const (
	// KindResource wraps a resource-table failure.
	KindResource ErrorKind = iota

	// KindNameExceeded indicates a task name over the length limit.
	KindNameExceeded

	// KindNameInvalid indicates a task name with forbidden characters.
	KindNameInvalid

	// KindAlreadyExists indicates a duplicate task name.
	KindAlreadyExists

	// KindTooManyCrons indicates the task count limit was reached.
	KindTooManyCrons

	// KindInvalidCron indicates a malformed schedule expression.
	KindInvalidCron

	// KindInvalidBackoff indicates a malformed backoff schedule.
	KindInvalidBackoff

	// KindAcquire indicates the scheduler slot could not be acquired.
	KindAcquire

	// KindOther wraps any other failure.
	KindOther
)

// Error is the scheduled-task subsystem's error type. Name carries the task
// name for the name variants.
type Error struct {
	Kind ErrorKind
	Name string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindResource:
		return fmt.Sprintf("resource error: %v", e.Err)
	case KindNameExceeded:
		return fmt.Sprintf("cron name is too long: %q", e.Name)
	case KindNameInvalid:
		return "invalid cron name"
	case KindAlreadyExists:
		return fmt.Sprintf("cron with this name already exists: %q", e.Name)
	case KindTooManyCrons:
		return "too many crons"
	case KindInvalidCron:
		return "invalid cron schedule"
	case KindInvalidBackoff:
		return "invalid backoff schedule"
	case KindAcquire:
		return fmt.Sprintf("failed to acquire scheduler: %v", e.Err)
	case KindOther:
		return fmt.Sprintf("%v", e.Err)
	default:
		return "unknown cron error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}
