// Package errclass maps the runtime's native failures onto the small,
// stable set of exception classes the embedding engine exposes to script
// code.
//
// Native subsystems (filesystem, networking, TLS, foreign-function calls,
// key-value storage, web-platform primitives, storage quotas, scheduling)
// each raise their own richly-typed errors and evolve independently. The
// engine, by contrast, understands a closed vocabulary of class tags. This
// package is the seam between the two: a single registry that identifies an
// opaque error's concrete type and dispatches to the matching domain
// classifier.
//
// # Classification
//
// Classify is the entire boundary:
//
//	if class, ok := errclass.Classify(err); ok {
//	    raise(class, err)
//	} else {
//	    raise(errclass.ClassError, err)
//	}
//
// or, collapsed:
//
//	raise(errclass.ClassOrDefault(err), err)
//
// Classification is total and pure: it never fails, never panics, performs
// no I/O, and holds no state, so it is safe from any number of concurrent
// callers. An error of a type no check recognizes degrades to unclassified
// rather than crashing the embedding process.
//
// # Extensibility
//
// An error type may implement the Classed capability to report its own
// class:
//
//	func (e *TokenError) ErrorClass() string { return "PermissionDenied" }
//
// The registry consults the capability before any built-in check, and
// domain classifiers consult it when a variant wraps an opaque resource
// cause. This is the single seam that lets a resource attach its own class
// without the registry special-casing its subsystem.
//
// Each subsystem's error type lives in its own subpackage (net, tls, ffi,
// kv, web, webstorage, cron, cache, broadcast, canvas, gpu, env, modres).
// Wrapping variants expose their nested cause through Unwrap, and
// reclassifying a cause strictly reduces nesting depth, so recursion
// through wrapped errors always terminates.
package errclass
