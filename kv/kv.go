// Package kv defines the failure modes of the key-value store subsystem.
// Most variants are quantity or size limits hit by a single operation; the
// rest wrap a backend, resource, or I/O cause. Check and mutation failures
// carry their own nested error types.
package kv

import "fmt"

// ErrorKind identifies a key-value store failure mode.
type ErrorKind int

const (
	// KindDatabaseHandler wraps a backend database failure.
	KindDatabaseHandler ErrorKind = iota

	// KindResource wraps a resource-table failure.
	KindResource

	// KindKV wraps an inner store failure.
	KindKV

	// KindTooManyRanges indicates a read with too many ranges.
	KindTooManyRanges

	// KindTooManyEntries indicates a read returning too many entries.
	KindTooManyEntries

	// KindTooManyChecks indicates an atomic with too many checks.
	KindTooManyChecks

	// KindTooManyMutations indicates an atomic with too many mutations.
	KindTooManyMutations

	// KindTooManyKeys indicates a watch over too many keys.
	KindTooManyKeys

	// KindInvalidLimit indicates a non-positive entry limit.
	KindInvalidLimit

	// KindInvalidBoundaryKey indicates a malformed range boundary key.
	KindInvalidBoundaryKey

	// KindKeyTooLargeToRead indicates a read key over the size limit.
	KindKeyTooLargeToRead

	// KindKeyTooLargeToWrite indicates a write key over the size limit.
	KindKeyTooLargeToWrite

	// KindTotalMutationTooLarge indicates an atomic whose combined mutation
	// payload exceeds the size limit.
	KindTotalMutationTooLarge

	// KindTotalKeyTooLarge indicates an atomic whose combined key size
	// exceeds the limit.
	KindTotalKeyTooLarge

	// KindIO wraps an operating-system I/O failure.
	KindIO

	// KindQueueMessageNotFound indicates a queue message that no longer exists.
	KindQueueMessageNotFound

	// KindStartKeyNotInKeyspace indicates a range start outside the keyspace.
	KindStartKeyNotInKeyspace

	// KindEndKeyNotInKeyspace indicates a range end outside the keyspace.
	KindEndKeyNotInKeyspace

	// KindStartKeyGreaterThanEndKey indicates an inverted range.
	KindStartKeyGreaterThanEndKey

	// KindInvalidCheck wraps a nested check failure.
	KindInvalidCheck

	// KindInvalidMutation wraps a nested mutation failure.
	KindInvalidMutation

	// KindInvalidEnqueue wraps the I/O failure from an enqueue.
	KindInvalidEnqueue

	// KindEmptyKey indicates an empty key.
	KindEmptyKey

	// KindValueTooLarge indicates a value over the size limit.
	KindValueTooLarge

	// KindEnqueuePayloadTooLarge indicates a queue payload over the size limit.
	KindEnqueuePayloadTooLarge

	// KindInvalidCursor indicates a malformed pagination cursor.
	KindInvalidCursor

	// KindCursorOutOfBounds indicates a cursor outside the current range.
	KindCursorOutOfBounds

	// KindInvalidRange indicates a malformed range.
	KindInvalidRange
)

// Error is the key-value store's error type. Limit carries the exceeded
// bound for the limit variants; Check and Mutation carry the nested failure
// for their wrapping variants; Err carries every other wrapped cause.
type Error struct {
	Kind     ErrorKind
	Limit    int
	Err      error
	Check    *CheckError
	Mutation *MutationError
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindDatabaseHandler:
		return fmt.Sprintf("database handler error: %v", e.Err)
	case KindResource:
		return fmt.Sprintf("resource error: %v", e.Err)
	case KindKV:
		return fmt.Sprintf("kv error: %v", e.Err)
	case KindTooManyRanges:
		return fmt.Sprintf("too many ranges (max %d)", e.Limit)
	case KindTooManyEntries:
		return fmt.Sprintf("too many entries (max %d)", e.Limit)
	case KindTooManyChecks:
		return fmt.Sprintf("too many checks (max %d)", e.Limit)
	case KindTooManyMutations:
		return fmt.Sprintf("too many mutations (max %d)", e.Limit)
	case KindTooManyKeys:
		return fmt.Sprintf("too many keys (max %d)", e.Limit)
	case KindInvalidLimit:
		return "limit must be greater than 0"
	case KindInvalidBoundaryKey:
		return "invalid boundary key"
	case KindKeyTooLargeToRead:
		return fmt.Sprintf("key too large to read (max %d bytes)", e.Limit)
	case KindKeyTooLargeToWrite:
		return fmt.Sprintf("key too large to write (max %d bytes)", e.Limit)
	case KindTotalMutationTooLarge:
		return fmt.Sprintf("total mutation size too large (max %d bytes)", e.Limit)
	case KindTotalKeyTooLarge:
		return fmt.Sprintf("total key size too large (max %d bytes)", e.Limit)
	case KindIO:
		return fmt.Sprintf("io error: %v", e.Err)
	case KindQueueMessageNotFound:
		return "queue message not found"
	case KindStartKeyNotInKeyspace:
		return "start key is not in the keyspace defined by prefix"
	case KindEndKeyNotInKeyspace:
		return "end key is not in the keyspace defined by prefix"
	case KindStartKeyGreaterThanEndKey:
		return "start key is greater than end key"
	case KindInvalidCheck:
		return fmt.Sprintf("invalid check: %v", e.Check)
	case KindInvalidMutation:
		return fmt.Sprintf("invalid mutation: %v", e.Mutation)
	case KindInvalidEnqueue:
		return fmt.Sprintf("invalid enqueue: %v", e.Err)
	case KindEmptyKey:
		return "key cannot be empty"
	case KindValueTooLarge:
		return fmt.Sprintf("value too large (max %d bytes)", e.Limit)
	case KindEnqueuePayloadTooLarge:
		return fmt.Sprintf("enqueue payload too large (max %d bytes)", e.Limit)
	case KindInvalidCursor:
		return "invalid cursor"
	case KindCursorOutOfBounds:
		return "cursor out of bounds"
	case KindInvalidRange:
		return "invalid range"
	default:
		return "unknown kv error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindInvalidCheck:
		if e.Check != nil {
			return e.Check
		}
	case KindInvalidMutation:
		if e.Mutation != nil {
			return e.Mutation
		}
	}
	return e.Err
}

// CheckErrorKind identifies an atomic check failure.
type CheckErrorKind int

const (
	// CheckInvalidVersionstamp indicates a malformed versionstamp.
	CheckInvalidVersionstamp CheckErrorKind = iota

	// CheckIO wraps an operating-system I/O failure.
	CheckIO
)

// CheckError is raised while validating an atomic operation's checks.
type CheckError struct {
	Kind CheckErrorKind
	Err  error
}

func (e *CheckError) Error() string {
	switch e.Kind {
	case CheckInvalidVersionstamp:
		return "invalid versionstamp"
	case CheckIO:
		return fmt.Sprintf("io error: %v", e.Err)
	default:
		return "unknown check error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *CheckError) Unwrap() error {
	return e.Err
}

// MutationErrorKind identifies an atomic mutation failure.
type MutationErrorKind int

const (
	// MutationBigInt indicates an out-of-range big integer operand.
	MutationBigInt MutationErrorKind = iota

	// MutationIO wraps an operating-system I/O failure.
	MutationIO

	// MutationInvalidWithValue indicates a mutation kind that rejects the
	// provided value.
	MutationInvalidWithValue

	// MutationInvalidWithoutValue indicates a mutation kind that requires a
	// value but received none.
	MutationInvalidWithoutValue
)

// MutationError is raised while validating an atomic operation's mutations.
// Op names the offending mutation kind.
type MutationError struct {
	Kind MutationErrorKind
	Op   string
	Err  error
}

func (e *MutationError) Error() string {
	switch e.Kind {
	case MutationBigInt:
		return fmt.Sprintf("bigint error: %v", e.Err)
	case MutationIO:
		return fmt.Sprintf("io error: %v", e.Err)
	case MutationInvalidWithValue:
		return fmt.Sprintf("invalid mutation %q with value", e.Op)
	case MutationInvalidWithoutValue:
		return fmt.Sprintf("invalid mutation %q without value", e.Op)
	default:
		return "unknown mutation error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *MutationError) Unwrap() error {
	return e.Err
}
