//go:build unix

package errclass

import (
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"golang.org/x/sys/unix"
)

func TestClassifyErrno(t *testing.T) {
	tests := []struct {
		name  string
		errno syscall.Errno
		want  Class
	}{
		{name: "ENOENT", errno: unix.ENOENT, want: ClassNotFound},
		{name: "ECHILD", errno: unix.ECHILD, want: ClassNotFound},
		{name: "ESRCH", errno: unix.ESRCH, want: ClassNotFound},
		{name: "EACCES", errno: unix.EACCES, want: ClassPermissionDenied},
		{name: "EPERM", errno: unix.EPERM, want: ClassPermissionDenied},
		{name: "ECONNREFUSED", errno: unix.ECONNREFUSED, want: ClassConnectionRefused},
		{name: "ECONNRESET", errno: unix.ECONNRESET, want: ClassConnectionReset},
		{name: "ECONNABORTED", errno: unix.ECONNABORTED, want: ClassConnectionAborted},
		{name: "ENOTCONN", errno: unix.ENOTCONN, want: ClassNotConnected},
		{name: "EADDRINUSE", errno: unix.EADDRINUSE, want: ClassAddrInUse},
		{name: "EADDRNOTAVAIL", errno: unix.EADDRNOTAVAIL, want: ClassAddrNotAvailable},
		{name: "EPIPE", errno: unix.EPIPE, want: ClassBrokenPipe},
		{name: "EEXIST", errno: unix.EEXIST, want: ClassAlreadyExists},
		{name: "EINVAL maps to script type error", errno: unix.EINVAL, want: ClassTypeError},
		{name: "ETIMEDOUT", errno: unix.ETIMEDOUT, want: ClassTimedOut},
		{name: "EINTR", errno: unix.EINTR, want: ClassInterrupted},
		{name: "EAGAIN", errno: unix.EAGAIN, want: ClassWouldBlock},
		{name: "ENOTTY", errno: unix.ENOTTY, want: ClassBadResource},
		{name: "EBADF", errno: unix.EBADF, want: ClassBadResource},
		{name: "ENOTSUP", errno: unix.ENOTSUP, want: ClassNotSupported},
		{name: "ELOOP", errno: unix.ELOOP, want: ClassFilesystemLoop},
		{name: "EISDIR", errno: unix.EISDIR, want: ClassIsADirectory},
		{name: "ENOTDIR", errno: unix.ENOTDIR, want: ClassNotADirectory},
		{name: "ENETUNREACH", errno: unix.ENETUNREACH, want: ClassNetworkUnreachable},
		{name: "unmodeled errno", errno: unix.E2BIG, want: ClassError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, classifyErrno(tt.errno))
		})
	}
}

func TestClassify_ErrnoInsidePathError(t *testing.T) {
	err := &fs.PathError{Op: "open", Path: "/no/such/file", Err: syscall.ENOENT}

	class, ok := Classify(err)
	require.True(t, ok)
	require.Equal(t, ClassNotFound, class)
}
