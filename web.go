package errclass

import "github.com/jmgilman/go/errclass/web"

// classifyWeb maps a base web-platform failure to its class.
func classifyWeb(e *web.Error) Class {
	switch e.Kind {
	case web.KindBase64Decode:
		return ClassInvalidCharacter
	case web.KindInvalidEncodingLabel, web.KindValueTooLarge,
		web.KindBufferTooSmall:
		return ClassRangeError
	case web.KindBufferTooLong, web.KindDataInvalid:
		return ClassTypeError
	default:
		return ClassError
	}
}

// classifyWebCompression maps a compression-stream failure to its class.
// An I/O cause keeps its underlying I/O class.
func classifyWebCompression(e *web.CompressionError) Class {
	switch e.Kind {
	case web.CompressionIO:
		return classifyIO(e.Err)
	default:
		// CompressionUnsupportedFormat, CompressionResourceClosed,
		// CompressionInvalidInput.
		return ClassTypeError
	}
}

// classifyWebMessagePort maps a message-port failure to its class.
// Cancellation keeps its I/O class; a resource cause reclassifies through
// the registry.
func classifyWebMessagePort(e *web.MessagePortError) Class {
	switch e.Kind {
	case web.MessagePortCanceled:
		return ClassInterrupted
	case web.MessagePortResource:
		return classifyOr(e.Err, ClassError)
	default:
		return ClassTypeError
	}
}

// classifyWebStream maps a stream-resource failure to its class.
func classifyWebStream(e *web.StreamError) Class {
	switch e.Kind {
	case web.StreamCanceled:
		return ClassInterrupted
	default:
		return ClassTypeError
	}
}

// classifyWebBlob maps a blob failure to its class.
func classifyWebBlob(e *web.BlobError) Class {
	switch e.Kind {
	case web.BlobURL:
		return ClassError
	default:
		return ClassTypeError
	}
}
