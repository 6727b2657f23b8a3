// Package modres defines failures raised while resolving module specifiers.
package modres

import "fmt"

// ErrorKind identifies a module-resolution failure mode.
type ErrorKind int

const (
	// KindInvalidURL indicates a specifier that is not a valid URL.
	KindInvalidURL ErrorKind = iota

	// KindInvalidBaseURL indicates a base that is not a valid URL.
	KindInvalidBaseURL

	// KindInvalidPath indicates a specifier path that cannot be resolved.
	KindInvalidPath

	// KindImportPrefixMissing indicates a bare specifier without a
	// recognized prefix.
	KindImportPrefixMissing
)

// Error is raised while resolving a module specifier against a base.
type Error struct {
	Kind      ErrorKind
	Specifier string
	Err       error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidURL:
		return fmt.Sprintf("invalid url %q: %v", e.Specifier, e.Err)
	case KindInvalidBaseURL:
		return fmt.Sprintf("invalid base url for relative import %q: %v", e.Specifier, e.Err)
	case KindInvalidPath:
		return fmt.Sprintf("invalid module path %q", e.Specifier)
	case KindImportPrefixMissing:
		return fmt.Sprintf("relative import path %q not prefixed with / or ./ or ../", e.Specifier)
	default:
		return "unknown module resolution error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}
