//go:build unix

package errclass

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// classifyErrno maps a POSIX errno to its class. The table is total:
// unmodeled errnos collapse to ClassError. ENOTSUP is mapped like any other
// errno rather than being treated as unreachable; the runtime's I/O layer
// is not assumed to filter it out on every platform.
func classifyErrno(errno syscall.Errno) Class {
	switch errno {
	case unix.ENOENT, unix.ECHILD, unix.ESRCH:
		return ClassNotFound
	case unix.EACCES, unix.EPERM:
		return ClassPermissionDenied
	case unix.ECONNREFUSED:
		return ClassConnectionRefused
	case unix.ECONNRESET:
		return ClassConnectionReset
	case unix.ECONNABORTED:
		return ClassConnectionAborted
	case unix.ENOTCONN:
		return ClassNotConnected
	case unix.EADDRINUSE:
		return ClassAddrInUse
	case unix.EADDRNOTAVAIL:
		return ClassAddrNotAvailable
	case unix.EPIPE:
		return ClassBrokenPipe
	case unix.EEXIST:
		return ClassAlreadyExists
	case unix.EINVAL:
		return ClassTypeError
	case unix.ETIMEDOUT:
		return ClassTimedOut
	case unix.EINTR:
		return ClassInterrupted
	case unix.EAGAIN:
		return ClassWouldBlock
	case unix.ENOTTY, unix.EBADF:
		return ClassBadResource
	case unix.ENOTSUP:
		return ClassNotSupported
	case unix.ELOOP:
		return ClassFilesystemLoop
	case unix.EISDIR:
		return ClassIsADirectory
	case unix.ENOTDIR:
		return ClassNotADirectory
	case unix.ENETUNREACH:
		return ClassNetworkUnreachable
	default:
		return ClassError
	}
}
