//go:build windows

package errclass

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// classifyErrno maps a Windows error number to its class. The table is
// total: unmodeled errors collapse to ClassError.
func classifyErrno(errno syscall.Errno) Class {
	switch errno {
	case windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND:
		return ClassNotFound
	case windows.ERROR_ACCESS_DENIED:
		return ClassPermissionDenied
	case windows.WSAECONNREFUSED:
		return ClassConnectionRefused
	case windows.WSAECONNRESET:
		return ClassConnectionReset
	case windows.WSAECONNABORTED:
		return ClassConnectionAborted
	case windows.WSAENOTCONN:
		return ClassNotConnected
	case windows.WSAEADDRINUSE:
		return ClassAddrInUse
	case windows.WSAEADDRNOTAVAIL:
		return ClassAddrNotAvailable
	case windows.ERROR_BROKEN_PIPE, windows.ERROR_NO_DATA:
		return ClassBrokenPipe
	case windows.ERROR_FILE_EXISTS, windows.ERROR_ALREADY_EXISTS:
		return ClassAlreadyExists
	case windows.ERROR_INVALID_PARAMETER:
		return ClassTypeError
	case windows.WSAETIMEDOUT:
		return ClassTimedOut
	case windows.ERROR_OPERATION_ABORTED:
		return ClassInterrupted
	case windows.WSAEWOULDBLOCK:
		return ClassWouldBlock
	case windows.ERROR_INVALID_HANDLE:
		return ClassBadResource
	case windows.ERROR_NOT_SUPPORTED:
		return ClassNotSupported
	case windows.ERROR_CANT_RESOLVE_FILENAME:
		return ClassFilesystemLoop
	case windows.ERROR_DIRECTORY:
		return ClassNotADirectory
	case windows.WSAENETUNREACH:
		return ClassNetworkUnreachable
	default:
		return ClassError
	}
}
