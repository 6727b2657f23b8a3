// Package env defines failures raised while reading process environment variables.
package env

import "fmt"

// VarErrorKind identifies an environment-variable failure mode.
type VarErrorKind int

const (
	// VarNotPresent indicates the variable is not set.
	VarNotPresent VarErrorKind = iota

	// VarNotUnicode indicates the variable's value is not valid unicode.
	VarNotUnicode
)

// VarError is raised while reading an environment variable.
type VarError struct {
	Kind VarErrorKind
	Name string
}

func (e *VarError) Error() string {
	switch e.Kind {
	case VarNotPresent:
		return fmt.Sprintf("environment variable not found: %q", e.Name)
	case VarNotUnicode:
		return fmt.Sprintf("environment variable is not valid unicode: %q", e.Name)
	default:
		return "unknown environment variable error"
	}
}
