package errclass

import "errors"

// Class identifies the user-visible exception kind an error corresponds to.
// The set of classes is closed: it is the contract surface between the
// runtime and the embedding engine, and a new class must not be introduced
// without the engine learning it.
type Class string

const (
	// ClassNotFound indicates a resource that does not exist.
	ClassNotFound Class = "NotFound"

	// ClassPermissionDenied indicates a failed permission check.
	ClassPermissionDenied Class = "PermissionDenied"

	// ClassConnectionRefused indicates the peer refused the connection.
	ClassConnectionRefused Class = "ConnectionRefused"

	// ClassConnectionReset indicates the peer reset the connection.
	ClassConnectionReset Class = "ConnectionReset"

	// ClassConnectionAborted indicates the connection was aborted.
	ClassConnectionAborted Class = "ConnectionAborted"

	// ClassNotConnected indicates an operation on an unconnected socket.
	ClassNotConnected Class = "NotConnected"

	// ClassAddrInUse indicates the address is already in use.
	ClassAddrInUse Class = "AddrInUse"

	// ClassAddrNotAvailable indicates the address is not available.
	ClassAddrNotAvailable Class = "AddrNotAvailable"

	// ClassBrokenPipe indicates a write to a closed pipe or socket.
	ClassBrokenPipe Class = "BrokenPipe"

	// ClassAlreadyExists indicates a resource that already exists.
	ClassAlreadyExists Class = "AlreadyExists"

	// ClassInvalidData indicates data that failed validation or decoding.
	ClassInvalidData Class = "InvalidData"

	// ClassTimedOut indicates an operation that exceeded its deadline.
	ClassTimedOut Class = "TimedOut"

	// ClassInterrupted indicates an interrupted or canceled operation.
	ClassInterrupted Class = "Interrupted"

	// ClassWriteZero indicates a write that made no progress.
	ClassWriteZero Class = "WriteZero"

	// ClassUnexpectedEof indicates input that ended prematurely.
	ClassUnexpectedEof Class = "UnexpectedEof"

	// ClassWouldBlock indicates an operation that would block.
	ClassWouldBlock Class = "WouldBlock"

	// ClassBusy indicates a resource that is already in use.
	ClassBusy Class = "Busy"

	// ClassBadResource indicates an operation on a closed or invalid resource.
	ClassBadResource Class = "BadResource"

	// ClassNotSupported indicates an unsupported operation.
	ClassNotSupported Class = "NotSupported"

	// ClassFilesystemLoop indicates too many levels of symbolic links.
	ClassFilesystemLoop Class = "FilesystemLoop"

	// ClassIsADirectory indicates a file operation on a directory.
	ClassIsADirectory Class = "IsADirectory"

	// ClassNotADirectory indicates a directory operation on a file.
	ClassNotADirectory Class = "NotADirectory"

	// ClassNetworkUnreachable indicates an unreachable network.
	ClassNetworkUnreachable Class = "NetworkUnreachable"

	// ClassTypeError surfaces as a script type error.
	ClassTypeError Class = "TypeError"

	// ClassRangeError surfaces as a script range error.
	ClassRangeError Class = "RangeError"

	// ClassSyntaxError surfaces as a script syntax error.
	ClassSyntaxError Class = "SyntaxError"

	// ClassURIError surfaces as a script URI error.
	ClassURIError Class = "URIError"

	// ClassHTTP indicates an HTTP transport failure.
	ClassHTTP Class = "Http"

	// ClassError is the generic fallback class.
	ClassError Class = "Error"

	// ClassNotSupportedDOM surfaces as a NotSupportedError DOM exception.
	ClassNotSupportedDOM Class = "DOMExceptionNotSupportedError"

	// ClassQuotaExceeded surfaces as a QuotaExceededError DOM exception.
	ClassQuotaExceeded Class = "DOMExceptionQuotaExceededError"

	// ClassInvalidCharacter surfaces as an InvalidCharacterError DOM exception.
	ClassInvalidCharacter Class = "DOMExceptionInvalidCharacterError"

	// ClassOperationError surfaces as an OperationError DOM exception.
	ClassOperationError Class = "DOMExceptionOperationError"
)

// String returns the class tag as consumed by the embedding engine.
func (c Class) String() string {
	return string(c)
}

// Classed is the capability an error type may implement to report its own
// class. The registry consults it before any built-in check, and domain
// classifiers consult it when unwrapping a nested resource cause. The
// interface is dependency-free so any resource type can implement it
// without importing this package's vocabulary.
type Classed interface {
	// ErrorClass returns the class tag for this error.
	ErrorClass() string
}

// customClass reports the self-declared class of err, if any error in its
// chain implements Classed.
func customClass(err error) (Class, bool) {
	var classed Classed
	if errors.As(err, &classed) {
		return Class(classed.ErrorClass()), true
	}
	return "", false
}

// customClassOr returns the self-declared class of err, or fallback.
// Used by domain classifiers whose resource variants defer entirely to the
// wrapped resource's own classification.
func customClassOr(err error, fallback Class) Class {
	if c, ok := customClass(err); ok {
		return c
	}
	return fallback
}

// classifyOr reclassifies a wrapped cause through the full registry,
// falling back when the cause is itself unclassified. Each unwrap step
// strictly reduces nesting depth, so the recursion terminates.
func classifyOr(err error, fallback Class) Class {
	if c, ok := Classify(err); ok {
		return c
	}
	return fallback
}
