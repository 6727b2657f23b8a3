package errclass

import "github.com/jmgilman/go/errclass/kv"

// classifyKV maps a key-value store failure to its class. Quantity and size
// limits are script type errors; I/O causes delegate to the I/O leaf
// classifier; backend, resource, and inner causes reclassify through the
// registry; check and mutation sub-errors recurse one level with the same
// policy.
func classifyKV(e *kv.Error) Class {
	switch e.Kind {
	case kv.KindDatabaseHandler, kv.KindResource, kv.KindKV:
		return classifyOr(e.Err, ClassError)
	case kv.KindIO:
		return classifyIO(e.Err)
	case kv.KindInvalidCheck:
		if e.Check == nil {
			return ClassError
		}
		return classifyKVCheck(e.Check)
	case kv.KindInvalidMutation:
		if e.Mutation == nil {
			return ClassError
		}
		return classifyKVMutation(e.Mutation)
	case kv.KindInvalidEnqueue:
		return classifyIO(e.Err)
	default:
		// Every remaining variant is a quantity, size, or validation limit.
		return ClassTypeError
	}
}

func classifyKVCheck(e *kv.CheckError) Class {
	switch e.Kind {
	case kv.CheckIO:
		return classifyIO(e.Err)
	default:
		return ClassTypeError
	}
}

func classifyKVMutation(e *kv.MutationError) Class {
	switch e.Kind {
	case kv.MutationBigInt:
		return ClassError
	case kv.MutationIO:
		return classifyIO(e.Err)
	default:
		// MutationInvalidWithValue, MutationInvalidWithoutValue.
		return ClassTypeError
	}
}
