package errclass

import (
	"context"
	"errors"
	"io"
	"io/fs"
	stdnet "net"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyIO_Sentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Class
	}{
		{
			name: "not exist",
			err:  os.ErrNotExist,
			want: ClassNotFound,
		},
		{
			name: "permission",
			err:  os.ErrPermission,
			want: ClassPermissionDenied,
		},
		{
			name: "exist",
			err:  os.ErrExist,
			want: ClassAlreadyExists,
		},
		{
			name: "invalid argument maps to script type error",
			err:  os.ErrInvalid,
			want: ClassTypeError,
		},
		{
			name: "deadline exceeded",
			err:  os.ErrDeadlineExceeded,
			want: ClassTimedOut,
		},
		{
			name: "context deadline",
			err:  context.DeadlineExceeded,
			want: ClassTimedOut,
		},
		{
			name: "context canceled",
			err:  context.Canceled,
			want: ClassInterrupted,
		},
		{
			name: "unexpected eof",
			err:  io.ErrUnexpectedEOF,
			want: ClassUnexpectedEof,
		},
		{
			name: "short write",
			err:  io.ErrShortWrite,
			want: ClassWriteZero,
		},
		{
			name: "closed pipe",
			err:  io.ErrClosedPipe,
			want: ClassBrokenPipe,
		},
		{
			name: "closed network connection",
			err:  stdnet.ErrClosed,
			want: ClassBadResource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, classifyIO(tt.err))
		})
	}
}

func TestClassifyIO_TextualFallback(t *testing.T) {
	// Some platform error kinds have no dedicated code and are reported
	// only as descriptive text. The common ones must still route.
	tests := []struct {
		name string
		err  error
		want Class
	}{
		{
			name: "filesystem loop",
			err:  errors.New("open /tmp/a: too many levels of symbolic links"),
			want: ClassFilesystemLoop,
		},
		{
			name: "is a directory",
			err:  errors.New("read /tmp: is a directory"),
			want: ClassIsADirectory,
		},
		{
			name: "not a directory",
			err:  errors.New("open /tmp/f/x: not a directory"),
			want: ClassNotADirectory,
		},
		{
			name: "network unreachable",
			err:  errors.New("dial tcp: network is unreachable"),
			want: ClassNetworkUnreachable,
		},
		{
			name: "anything else",
			err:  errors.New("disk exploded"),
			want: ClassError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, classifyIO(tt.err))
		})
	}
}

func TestClassify_FileNotFoundWhileOpening(t *testing.T) {
	err := &fs.PathError{Op: "open", Path: "/no/such/file", Err: os.ErrNotExist}

	class, ok := Classify(err)
	require.True(t, ok)
	require.Equal(t, ClassNotFound, class)
}

func TestClassify_IOProbeSkipsUnrelatedErrors(t *testing.T) {
	// classifyIOError must not claim errors outside the I/O family, or
	// later probes would never run.
	_, ok := classifyIOError(errors.New("not io"))
	require.False(t, ok)
}

func TestClassify_LinkAndSyscallErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Class
	}{
		{
			name: "link error",
			err:  &os.LinkError{Op: "rename", Old: "a", New: "b", Err: os.ErrExist},
			want: ClassAlreadyExists,
		},
		{
			name: "syscall error",
			err:  os.NewSyscallError("bind", os.ErrPermission),
			want: ClassPermissionDenied,
		},
		{
			name: "net op error",
			err:  &stdnet.OpError{Op: "dial", Net: "tcp", Err: os.ErrDeadlineExceeded},
			want: ClassTimedOut,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, ok := Classify(tt.err)
			require.True(t, ok)
			require.Equal(t, tt.want, class)
		})
	}
}
