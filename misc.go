package errclass

import (
	"errors"
	"regexp/syntax"

	"github.com/fsnotify/fsnotify"

	"github.com/jmgilman/go/errclass/env"
	"github.com/jmgilman/go/errclass/modres"
)

// classifyEnvVar maps an environment-variable failure to its class.
func classifyEnvVar(e *env.VarError) Class {
	switch e.Kind {
	case env.VarNotPresent:
		return ClassNotFound
	default:
		return ClassInvalidData
	}
}

// classifyModuleResolution maps a module-resolution failure to its class.
// Every variant is a specifier problem and surfaces as a script URI error.
func classifyModuleResolution(_ *modres.Error) Class {
	return ClassURIError
}

// classifyRegexp maps a pattern compilation failure to its class. Patterns
// whose compiled form exceeds the size or nesting limits are range errors;
// everything else is a syntax error.
func classifyRegexp(e *syntax.Error) Class {
	switch e.Code {
	case syntax.ErrLarge, syntax.ErrNestingDepth:
		return ClassRangeError
	default:
		return ClassSyntaxError
	}
}

// classifyFSWatch maps filesystem-watcher failures to their class.
func classifyFSWatch(err error) (Class, bool) {
	switch {
	case errors.Is(err, fsnotify.ErrNonExistentWatch):
		return ClassNotFound, true
	case errors.Is(err, fsnotify.ErrClosed):
		return ClassBadResource, true
	case errors.Is(err, fsnotify.ErrUnsupported):
		return ClassNotSupported, true
	case errors.Is(err, fsnotify.ErrEventOverflow):
		return ClassError, true
	}
	return "", false
}
