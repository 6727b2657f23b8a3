// Package ffi defines the failure modes of the foreign-function-interface
// subsystem. The failures are layered the way the subsystem itself is:
// value representation (ReprError), dynamic-library loading (DlopenError,
// DlfcnError), static symbol binding (StaticError), and call or callback
// execution (CallError, CallbackError). Variants that wrap another failure
// expose it through Unwrap.
package ffi

import "fmt"

// ReprErrorKind identifies a native value representation failure.
type ReprErrorKind int

const (
	// ReprInvalidOffset indicates an out-of-range pointer offset.
	ReprInvalidOffset ReprErrorKind = iota

	// ReprInvalidArrayBuffer indicates a detached or invalid buffer.
	ReprInvalidArrayBuffer

	// ReprDestinationTooShort indicates a destination buffer too small for
	// the value being written.
	ReprDestinationTooShort

	// ReprInvalidCString indicates a C string that is not readable.
	ReprInvalidCString

	// ReprCStringTooLong indicates a C string exceeding the maximum length.
	ReprCStringTooLong

	// ReprInvalidValue indicates a pointer that cannot be read as the
	// requested scalar type.
	ReprInvalidValue

	// ReprInvalidPointer indicates an unreadable pointer.
	ReprInvalidPointer

	// ReprPermission wraps a failed permission check.
	ReprPermission
)

// ReprError is raised while reading or writing native value representations.
// Type names the scalar type for ReprInvalidValue.
type ReprError struct {
	Kind ReprErrorKind
	Type string
	Err  error
}

func (e *ReprError) Error() string {
	switch e.Kind {
	case ReprInvalidOffset:
		return "invalid offset"
	case ReprInvalidArrayBuffer:
		return "invalid array buffer"
	case ReprDestinationTooShort:
		return "destination length is smaller than source length"
	case ReprInvalidCString:
		return "invalid cstring pointer"
	case ReprCStringTooLong:
		return "cstring is too long"
	case ReprInvalidValue:
		return fmt.Sprintf("invalid %s pointer", e.Type)
	case ReprInvalidPointer:
		return "invalid pointer"
	case ReprPermission:
		return fmt.Sprintf("permission check failed: %v", e.Err)
	default:
		return "unknown representation error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *ReprError) Unwrap() error {
	return e.Err
}

// IRError is raised when a value cannot be lowered to the call's
// intermediate representation.
type IRError struct {
	Message string
}

func (e *IRError) Error() string {
	return e.Message
}

// DlopenErrorKind identifies a dynamic-library loading failure.
type DlopenErrorKind int

const (
	// DlopenNullCharacter indicates a library path containing a null byte.
	DlopenNullCharacter DlopenErrorKind = iota

	// DlopenOpeningLibrary wraps the I/O failure from opening the library.
	DlopenOpeningLibrary

	// DlopenSymbolGetting wraps the I/O failure from a symbol lookup.
	DlopenSymbolGetting

	// DlopenAddrNotMatching wraps the I/O failure from an address that does
	// not belong to the library.
	DlopenAddrNotMatching

	// DlopenNullSymbol indicates a symbol that resolved to null.
	DlopenNullSymbol
)

// DlopenError is raised by the dynamic loader itself.
type DlopenError struct {
	Kind DlopenErrorKind
	Err  error
}

func (e *DlopenError) Error() string {
	switch e.Kind {
	case DlopenNullCharacter:
		return "library path contains a null character"
	case DlopenOpeningLibrary:
		return fmt.Sprintf("could not open library: %v", e.Err)
	case DlopenSymbolGetting:
		return fmt.Sprintf("could not obtain symbol: %v", e.Err)
	case DlopenAddrNotMatching:
		return fmt.Sprintf("address does not match the library: %v", e.Err)
	case DlopenNullSymbol:
		return "symbol is null"
	default:
		return "unknown dlopen error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *DlopenError) Unwrap() error {
	return e.Err
}

// DlfcnErrorKind identifies a failure while binding a loaded library's
// symbols into the runtime.
type DlfcnErrorKind int

const (
	// DlfcnRegisterSymbol indicates a symbol that could not be registered.
	DlfcnRegisterSymbol DlfcnErrorKind = iota

	// DlfcnDlopen wraps a loader failure.
	DlfcnDlopen

	// DlfcnPermission wraps a failed permission check.
	DlfcnPermission

	// DlfcnOther wraps any other failure.
	DlfcnOther
)

// DlfcnError is raised while opening a library and binding its symbols.
// Symbol names the offending symbol for DlfcnRegisterSymbol.
type DlfcnError struct {
	Kind   DlfcnErrorKind
	Symbol string
	Err    error
}

func (e *DlfcnError) Error() string {
	switch e.Kind {
	case DlfcnRegisterSymbol:
		return fmt.Sprintf("failed to register symbol %s", e.Symbol)
	case DlfcnDlopen:
		return fmt.Sprintf("failed to load library: %v", e.Err)
	case DlfcnPermission:
		return fmt.Sprintf("permission check failed: %v", e.Err)
	case DlfcnOther:
		return fmt.Sprintf("%v", e.Err)
	default:
		return "unknown dlfcn error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *DlfcnError) Unwrap() error {
	return e.Err
}

// StaticErrorKind identifies a static symbol binding failure.
type StaticErrorKind int

const (
	// StaticDlfcn wraps a symbol binding failure.
	StaticDlfcn StaticErrorKind = iota

	// StaticInvalidTypeVoid indicates a static of type void.
	StaticInvalidTypeVoid

	// StaticInvalidTypeStruct indicates a static of struct type.
	StaticInvalidTypeStruct

	// StaticResource wraps a resource-table failure.
	StaticResource
)

// StaticError is raised while reading a static symbol. Dlfcn carries the
// nested binding failure for StaticDlfcn.
type StaticError struct {
	Kind  StaticErrorKind
	Dlfcn *DlfcnError
	Err   error
}

func (e *StaticError) Error() string {
	switch e.Kind {
	case StaticDlfcn:
		return e.Dlfcn.Error()
	case StaticInvalidTypeVoid:
		return "static type cannot be void"
	case StaticInvalidTypeStruct:
		return "static type cannot be a struct"
	case StaticResource:
		return fmt.Sprintf("resource error: %v", e.Err)
	default:
		return "unknown static error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *StaticError) Unwrap() error {
	if e.Kind == StaticDlfcn && e.Dlfcn != nil {
		return e.Dlfcn
	}
	return e.Err
}

// CallbackErrorKind identifies a callback registration or invocation failure.
type CallbackErrorKind int

const (
	// CallbackResource wraps a resource-table failure.
	CallbackResource CallbackErrorKind = iota

	// CallbackPermission wraps a failed permission check.
	CallbackPermission

	// CallbackOther wraps any other failure.
	CallbackOther
)

// CallbackError is raised while managing native callbacks. Every variant
// wraps another failure.
type CallbackError struct {
	Kind CallbackErrorKind
	Err  error
}

func (e *CallbackError) Error() string {
	switch e.Kind {
	case CallbackResource:
		return fmt.Sprintf("resource error: %v", e.Err)
	case CallbackPermission:
		return fmt.Sprintf("permission check failed: %v", e.Err)
	case CallbackOther:
		return fmt.Sprintf("%v", e.Err)
	default:
		return "unknown callback error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *CallbackError) Unwrap() error {
	return e.Err
}

// CallErrorKind identifies a foreign call failure.
type CallErrorKind int

const (
	// CallIR indicates the arguments could not be lowered for the call.
	CallIR CallErrorKind = iota

	// CallNonblockingFailure indicates a nonblocking call that failed to
	// complete.
	CallNonblockingFailure

	// CallInvalidSymbol indicates a call through an invalid symbol.
	CallInvalidSymbol

	// CallPermission wraps a failed permission check.
	CallPermission

	// CallCallback wraps a nested callback failure.
	CallCallback
)

// CallError is raised while invoking a foreign function. Callback carries
// the nested callback failure for CallCallback; Symbol names the symbol for
// CallInvalidSymbol.
type CallError struct {
	Kind     CallErrorKind
	Symbol   string
	Callback *CallbackError
	Err      error
}

func (e *CallError) Error() string {
	switch e.Kind {
	case CallIR:
		return fmt.Sprintf("invalid ffi arguments: %v", e.Err)
	case CallNonblockingFailure:
		return "nonblocking call failed"
	case CallInvalidSymbol:
		return fmt.Sprintf("invalid ffi symbol: %s", e.Symbol)
	case CallPermission:
		return fmt.Sprintf("permission check failed: %v", e.Err)
	case CallCallback:
		return e.Callback.Error()
	default:
		return "unknown call error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *CallError) Unwrap() error {
	if e.Kind == CallCallback && e.Callback != nil {
		return e.Callback
	}
	return e.Err
}
