package errclass

import (
	"context"
	"errors"
	"io"
	"io/fs"
	stdnet "net"
	"os"
	"strings"
	"syscall"
)

// classifyIO maps an operating-system I/O failure to its class. It is the
// leaf classifier reused by every subsystem variant that wraps an I/O
// cause, so it is total: unrecognized conditions collapse to ClassError.
func classifyIO(err error) Class {
	if err == nil {
		return ClassError
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return classifyErrno(errno)
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ClassNotFound
	case errors.Is(err, fs.ErrPermission):
		return ClassPermissionDenied
	case errors.Is(err, fs.ErrExist):
		return ClassAlreadyExists
	// Invalid arguments surface to script code as type errors, not as a
	// generic invalid-data condition.
	case errors.Is(err, fs.ErrInvalid):
		return ClassTypeError
	case errors.Is(err, os.ErrDeadlineExceeded),
		errors.Is(err, context.DeadlineExceeded):
		return ClassTimedOut
	case errors.Is(err, context.Canceled):
		return ClassInterrupted
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		return ClassUnexpectedEof
	case errors.Is(err, io.ErrShortWrite):
		return ClassWriteZero
	case errors.Is(err, io.ErrClosedPipe):
		return ClassBrokenPipe
	case errors.Is(err, stdnet.ErrClosed):
		return ClassBadResource
	}

	return classifyIOText(err.Error())
}

// classifyIOText routes conditions the platform reports only as descriptive
// text. Some error kinds have no dedicated code on every platform, and the
// common ones must still classify correctly.
func classifyIOText(msg string) Class {
	msg = strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "too many levels of symbolic links"):
		return ClassFilesystemLoop
	case strings.Contains(msg, "is a directory"):
		return ClassIsADirectory
	case strings.Contains(msg, "not a directory"):
		return ClassNotADirectory
	case strings.Contains(msg, "network is unreachable"):
		return ClassNetworkUnreachable
	default:
		return ClassError
	}
}

// classifyIOError is the registry probe for the I/O family. Unlike
// classifyIO it only claims errors that are structurally recognizable as
// I/O failures, so the registry can keep probing on a miss.
func classifyIOError(err error) (Class, bool) {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return classifyIO(pathErr.Err), true
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return classifyIO(linkErr.Err), true
	}
	var syscallErr *os.SyscallError
	if errors.As(err, &syscallErr) {
		return classifyIO(syscallErr.Err), true
	}
	var opErr *stdnet.OpError
	if errors.As(err, &opErr) {
		return classifyIO(opErr.Err), true
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return classifyErrno(errno), true
	}

	switch {
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission),
		errors.Is(err, fs.ErrExist),
		errors.Is(err, fs.ErrInvalid),
		errors.Is(err, os.ErrDeadlineExceeded),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrShortWrite),
		errors.Is(err, io.ErrClosedPipe),
		errors.Is(err, stdnet.ErrClosed):
		return classifyIO(err), true
	}

	return "", false
}
