// Package web defines the failure modes of the web-platform primitives:
// encoding and buffer handling (Error), compression streams
// (CompressionError), message ports (MessagePortError), readable and
// writable stream resources (StreamError), blobs (BlobError), and URL
// patterns (PatternError).
package web

import "fmt"

// ErrorKind identifies a base web-platform failure mode.
type ErrorKind int

const (
	// KindBase64Decode indicates malformed base64 input.
	KindBase64Decode ErrorKind = iota

	// KindInvalidEncodingLabel indicates an unknown encoding label.
	KindInvalidEncodingLabel

	// KindBufferTooLong indicates a buffer exceeding the platform limit.
	KindBufferTooLong

	// KindValueTooLarge indicates a value that does not fit its destination.
	KindValueTooLarge

	// KindBufferTooSmall indicates a destination buffer that is too small.
	KindBufferTooSmall

	// KindDataInvalid indicates data that failed decoding.
	KindDataInvalid

	// KindData wraps an opaque data-processing failure.
	KindData
)

// Error is the base web-platform error type. Label carries the encoding
// label for KindInvalidEncodingLabel.
type Error struct {
	Kind  ErrorKind
	Label string
	Err   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindBase64Decode:
		return "failed to decode base64"
	case KindInvalidEncodingLabel:
		return fmt.Sprintf("the encoding label provided (%q) is invalid", e.Label)
	case KindBufferTooLong:
		return "buffer exceeds maximum length"
	case KindValueTooLarge:
		return "value too large to decode"
	case KindBufferTooSmall:
		return "provided buffer too small"
	case KindDataInvalid:
		return "the encoded data is not valid"
	case KindData:
		return fmt.Sprintf("data error: %v", e.Err)
	default:
		return "unknown web error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// CompressionErrorKind identifies a compression-stream failure mode.
type CompressionErrorKind int

const (
	// CompressionUnsupportedFormat indicates an unknown compression format.
	CompressionUnsupportedFormat CompressionErrorKind = iota

	// CompressionResourceClosed indicates a write to a closed stream.
	CompressionResourceClosed

	// CompressionInvalidInput indicates input the codec rejects.
	CompressionInvalidInput

	// CompressionIO wraps an operating-system I/O failure.
	CompressionIO
)

// CompressionError is raised by compression and decompression streams.
type CompressionError struct {
	Kind CompressionErrorKind
	Err  error
}

func (e *CompressionError) Error() string {
	switch e.Kind {
	case CompressionUnsupportedFormat:
		return "unsupported compression format"
	case CompressionResourceClosed:
		return "the stream resource is closed"
	case CompressionInvalidInput:
		return fmt.Sprintf("invalid input: %v", e.Err)
	case CompressionIO:
		return fmt.Sprintf("io error: %v", e.Err)
	default:
		return "unknown compression error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *CompressionError) Unwrap() error {
	return e.Err
}

// MessagePortErrorKind identifies a message-port failure mode.
type MessagePortErrorKind int

const (
	// MessagePortInvalidTransfer indicates a non-transferable value in the
	// transfer list.
	MessagePortInvalidTransfer MessagePortErrorKind = iota

	// MessagePortNotReady indicates a port that is not ready for transfer.
	MessagePortNotReady

	// MessagePortTransferSelf indicates a port posted to itself.
	MessagePortTransferSelf

	// MessagePortCanceled indicates the receive was canceled.
	MessagePortCanceled

	// MessagePortResource wraps a resource-table failure.
	MessagePortResource
)

// MessagePortError is raised by message-port operations.
type MessagePortError struct {
	Kind MessagePortErrorKind
	Err  error
}

func (e *MessagePortError) Error() string {
	switch e.Kind {
	case MessagePortInvalidTransfer:
		return "invalid message port transfer"
	case MessagePortNotReady:
		return "message port is not ready for transfer"
	case MessagePortTransferSelf:
		return "can not transfer self message port"
	case MessagePortCanceled:
		return "operation canceled"
	case MessagePortResource:
		return fmt.Sprintf("resource error: %v", e.Err)
	default:
		return "unknown message port error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *MessagePortError) Unwrap() error {
	return e.Err
}

// StreamErrorKind identifies a stream-resource failure mode.
type StreamErrorKind int

const (
	// StreamCanceled indicates the stream operation was canceled.
	StreamCanceled StreamErrorKind = iota

	// StreamScript indicates a failure raised by script while servicing the
	// stream.
	StreamScript
)

// StreamError is raised by readable and writable stream resources.
// Message carries the script failure text for StreamScript.
type StreamError struct {
	Kind    StreamErrorKind
	Message string
	Err     error
}

func (e *StreamError) Error() string {
	switch e.Kind {
	case StreamCanceled:
		return "operation canceled"
	case StreamScript:
		return e.Message
	default:
		return "unknown stream error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *StreamError) Unwrap() error {
	return e.Err
}

// BlobErrorKind identifies a blob failure mode.
type BlobErrorKind int

const (
	// BlobPartNotFound indicates a blob part that no longer exists.
	BlobPartNotFound BlobErrorKind = iota

	// BlobSizeLargerThanPart indicates a slice larger than its backing part.
	BlobSizeLargerThanPart

	// BlobURLsNotSupported indicates blob URLs are unavailable.
	BlobURLsNotSupported

	// BlobURL wraps a blob URL parse failure.
	BlobURL
)

// BlobError is raised by blob storage operations.
type BlobError struct {
	Kind BlobErrorKind
	Err  error
}

func (e *BlobError) Error() string {
	switch e.Kind {
	case BlobPartNotFound:
		return "blob part not found"
	case BlobSizeLargerThanPart:
		return "size is larger than blob part"
	case BlobURLsNotSupported:
		return "blob urls are not supported in this context"
	case BlobURL:
		return fmt.Sprintf("blob url error: %v", e.Err)
	default:
		return "unknown blob error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *BlobError) Unwrap() error {
	return e.Err
}

// PatternError is raised when a URL pattern fails to parse or compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid url pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the wrapped cause, if any.
func (e *PatternError) Unwrap() error {
	return e.Err
}
