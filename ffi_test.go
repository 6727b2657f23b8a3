package errclass

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/errclass/ffi"
)

func TestClassifyFFIRepr(t *testing.T) {
	permission := &fs.PathError{Op: "open", Path: "/dev/mem", Err: os.ErrPermission}

	tests := []struct {
		name string
		err  *ffi.ReprError
		want Class
	}{
		{
			name: "invalid offset",
			err:  &ffi.ReprError{Kind: ffi.ReprInvalidOffset},
			want: ClassTypeError,
		},
		{
			name: "invalid array buffer",
			err:  &ffi.ReprError{Kind: ffi.ReprInvalidArrayBuffer},
			want: ClassTypeError,
		},
		{
			name: "short destination buffer",
			err:  &ffi.ReprError{Kind: ffi.ReprDestinationTooShort},
			want: ClassRangeError,
		},
		{
			name: "invalid cstring",
			err:  &ffi.ReprError{Kind: ffi.ReprInvalidCString},
			want: ClassTypeError,
		},
		{
			name: "invalid scalar pointer",
			err:  &ffi.ReprError{Kind: ffi.ReprInvalidValue, Type: "u64"},
			want: ClassTypeError,
		},
		{
			name: "permission cause reclassifies",
			err:  &ffi.ReprError{Kind: ffi.ReprPermission, Err: permission},
			want: ClassPermissionDenied,
		},
		{
			name: "unclassifiable permission cause is generic",
			err:  &ffi.ReprError{Kind: ffi.ReprPermission, Err: errors.New("denied")},
			want: ClassError,
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

func TestClassifyFFILayers(t *testing.T) {
	permission := &fs.PathError{Op: "open", Path: "/lib/x.so", Err: os.ErrPermission}

	tests := []struct {
		name string
		err  error
		want Class
	}{
		{
			name: "ir error",
			err:  &ffi.IRError{Message: "invalid argument type"},
			want: ClassTypeError,
		},
		{
			name: "dlfcn register symbol",
			err:  &ffi.DlfcnError{Kind: ffi.DlfcnRegisterSymbol, Symbol: "add"},
			want: ClassError,
		},
		{
			name: "dlfcn dlopen",
			err:  &ffi.DlfcnError{Kind: ffi.DlfcnDlopen, Err: errors.New("not a shared object")},
			want: ClassError,
		},
		{
			name: "dlfcn permission cause reclassifies",
			err:  &ffi.DlfcnError{Kind: ffi.DlfcnPermission, Err: permission},
			want: ClassPermissionDenied,
		},
		{
			name: "static void type",
			err:  &ffi.StaticError{Kind: ffi.StaticInvalidTypeVoid},
			want: ClassTypeError,
		},
		{
			name: "static struct type",
			err:  &ffi.StaticError{Kind: ffi.StaticInvalidTypeStruct},
			want: ClassTypeError,
		},
		{
			name: "static nested dlfcn",
			err: &ffi.StaticError{
				Kind:  ffi.StaticDlfcn,
				Dlfcn: &ffi.DlfcnError{Kind: ffi.DlfcnPermission, Err: permission},
			},
			want: ClassPermissionDenied,
		},
		{
			name: "callback permission cause reclassifies",
			err:  &ffi.CallbackError{Kind: ffi.CallbackPermission, Err: permission},
			want: ClassPermissionDenied,
		},
		{
			name: "call with invalid arguments",
			err:  &ffi.CallError{Kind: ffi.CallIR},
			want: ClassTypeError,
		},
		{
			name: "call through invalid symbol",
			err:  &ffi.CallError{Kind: ffi.CallInvalidSymbol, Symbol: "mul"},
			want: ClassTypeError,
		},
		{
			name: "nonblocking call failure",
			err:  &ffi.CallError{Kind: ffi.CallNonblockingFailure},
			want: ClassError,
		},
		{
			name: "call nested callback",
			err: &ffi.CallError{
				Kind:     ffi.CallCallback,
				Callback: &ffi.CallbackError{Kind: ffi.CallbackOther, Err: errors.New("boom")},
			},
			want: ClassError,
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

func TestClassifyDlopen(t *testing.T) {
	tests := []struct {
		name string
		err  *ffi.DlopenError
		want Class
	}{
		{
			name: "null character in path",
			err:  &ffi.DlopenError{Kind: ffi.DlopenNullCharacter},
			want: ClassInvalidData,
		},
		{
			name: "open failure keeps io class",
			err: &ffi.DlopenError{
				Kind: ffi.DlopenOpeningLibrary,
				Err:  &fs.PathError{Op: "open", Path: "/lib/missing.so", Err: os.ErrNotExist},
			},
			want: ClassNotFound,
		},
		{
			name: "symbol lookup keeps io class",
			err: &ffi.DlopenError{
				Kind: ffi.DlopenSymbolGetting,
				Err:  os.ErrNotExist,
			},
			want: ClassNotFound,
		},
		{
			name: "null symbol",
			err:  &ffi.DlopenError{Kind: ffi.DlopenNullSymbol},
			want: ClassNotFound,
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
