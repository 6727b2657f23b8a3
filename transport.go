package errclass

import (
	"errors"
	"net/url"

	"github.com/gorilla/websocket"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// classifyURL maps URL failures to their class. A parse failure is a script
// URI error; any other operation carried by a URL error is an HTTP
// transport failure.
func classifyURL(err error) (Class, bool) {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Op == "parse" {
			return ClassURIError, true
		}
		return ClassHTTP, true
	}
	var escapeErr url.EscapeError
	if errors.As(err, &escapeErr) {
		return ClassURIError, true
	}
	var hostErr url.InvalidHostError
	if errors.As(err, &hostErr) {
		return ClassURIError, true
	}
	return "", false
}

// classifyGRPC maps gRPC status codes onto the class vocabulary.
func classifyGRPC(err error) (Class, bool) {
	st, ok := status.FromError(err)
	if !ok {
		return "", false
	}
	switch st.Code() {
	case codes.NotFound:
		return ClassNotFound, true
	case codes.PermissionDenied, codes.Unauthenticated:
		return ClassPermissionDenied, true
	case codes.AlreadyExists:
		return ClassAlreadyExists, true
	case codes.InvalidArgument:
		return ClassTypeError, true
	case codes.OutOfRange:
		return ClassRangeError, true
	case codes.DeadlineExceeded:
		return ClassTimedOut, true
	case codes.Canceled:
		return ClassInterrupted, true
	case codes.Unimplemented:
		return ClassNotSupported, true
	case codes.DataLoss:
		return ClassInvalidData, true
	default:
		return ClassError, true
	}
}

// classifyWebSocket maps websocket close codes and handshake failures to
// their class.
func classifyWebSocket(err error) (Class, bool) {
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		switch closeErr.Code {
		case websocket.CloseMessageTooBig:
			return ClassRangeError, true
		case websocket.CloseAbnormalClosure:
			return ClassConnectionReset, true
		case websocket.CloseTryAgainLater:
			return ClassBusy, true
		case websocket.CloseMandatoryExtension:
			return ClassNotSupported, true
		default:
			return ClassError, true
		}
	}
	if errors.Is(err, websocket.ErrBadHandshake) {
		return ClassHTTP, true
	}
	return "", false
}
