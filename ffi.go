package errclass

import "github.com/jmgilman/go/errclass/ffi"

// The foreign-function interface raises four layered error families plus
// the dynamic loader's own errors. Invalid argument shapes are script type
// errors, insufficient buffers are range errors, and permission or resource
// wrappers reclassify their cause through the registry.

func classifyFFIRepr(e *ffi.ReprError) Class {
	switch e.Kind {
	case ffi.ReprDestinationTooShort:
		return ClassRangeError
	case ffi.ReprPermission:
		return classifyOr(e.Err, ClassError)
	default:
		return ClassTypeError
	}
}

func classifyFFIDlfcn(e *ffi.DlfcnError) Class {
	switch e.Kind {
	case ffi.DlfcnPermission, ffi.DlfcnOther:
		return classifyOr(e.Err, ClassError)
	default:
		// DlfcnRegisterSymbol, DlfcnDlopen.
		return ClassError
	}
}

func classifyFFIStatic(e *ffi.StaticError) Class {
	switch e.Kind {
	case ffi.StaticDlfcn:
		if e.Dlfcn == nil {
			return ClassError
		}
		return classifyFFIDlfcn(e.Dlfcn)
	case ffi.StaticInvalidTypeVoid, ffi.StaticInvalidTypeStruct:
		return ClassTypeError
	default:
		return classifyOr(e.Err, ClassError)
	}
}

func classifyFFICallback(e *ffi.CallbackError) Class {
	// Every callback variant wraps another failure.
	return classifyOr(e.Err, ClassError)
}

func classifyFFICall(e *ffi.CallError) Class {
	switch e.Kind {
	case ffi.CallIR, ffi.CallInvalidSymbol:
		return ClassTypeError
	case ffi.CallPermission:
		return classifyOr(e.Err, ClassError)
	case ffi.CallCallback:
		if e.Callback == nil {
			return ClassError
		}
		return classifyFFICallback(e.Callback)
	default:
		return ClassError
	}
}

// classifyDlopen maps a dynamic-loader failure to its class. Open and
// symbol-lookup failures keep their underlying I/O class.
func classifyDlopen(e *ffi.DlopenError) Class {
	switch e.Kind {
	case ffi.DlopenNullCharacter:
		return ClassInvalidData
	case ffi.DlopenOpeningLibrary, ffi.DlopenSymbolGetting,
		ffi.DlopenAddrNotMatching:
		return classifyIO(e.Err)
	case ffi.DlopenNullSymbol:
		return ClassNotFound
	default:
		return ClassError
	}
}
