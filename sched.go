package errclass

import (
	"github.com/jmgilman/go/errclass/broadcast"
	"github.com/jmgilman/go/errclass/cache"
	"github.com/jmgilman/go/errclass/canvas"
	"github.com/jmgilman/go/errclass/cron"
	"github.com/jmgilman/go/errclass/gpu"
)

// classifyCron maps a scheduled-task failure to its class. Validation
// failures are script type errors; a resource cause defers entirely to the
// resource's own classification.
func classifyCron(e *cron.Error) Class {
	switch e.Kind {
	case cron.KindResource:
		return customClassOr(e.Err, ClassError)
	case cron.KindNameExceeded, cron.KindNameInvalid, cron.KindAlreadyExists,
		cron.KindTooManyCrons, cron.KindInvalidCron, cron.KindInvalidBackoff:
		return ClassTypeError
	case cron.KindOther:
		return classifyOr(e.Err, ClassError)
	default:
		// KindAcquire.
		return ClassError
	}
}

// classifyCache maps a response-cache failure to its class.
func classifyCache(e *cache.Error) Class {
	switch e.Kind {
	case cache.KindResource:
		return customClassOr(e.Err, ClassError)
	case cache.KindOther:
		return classifyOr(e.Err, ClassError)
	case cache.KindIO:
		return classifyIO(e.Err)
	default:
		// KindBackend, KindJoin.
		return ClassError
	}
}

// classifyBroadcast maps a broadcast-channel failure to its class. A
// resource cause without its own classification is generic, never a panic.
func classifyBroadcast(e *broadcast.Error) Class {
	switch e.Kind {
	case broadcast.KindResource:
		return customClassOr(e.Err, ClassError)
	case broadcast.KindOther:
		return classifyOr(e.Err, ClassError)
	default:
		// KindSendFailed, KindChannelClosed.
		return ClassError
	}
}

// classifyCanvas maps a canvas failure to its class.
func classifyCanvas(e *canvas.Error) Class {
	switch e.Kind {
	case canvas.KindUnsupportedColorType:
		return ClassTypeError
	default:
		return ClassError
	}
}

// classifyGPU maps a GPU failure through the subsystem's self-reported class.
func classifyGPU(e *gpu.Error) Class {
	return Class(e.ErrorClass())
}
