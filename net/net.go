// Package net defines the failure modes of the runtime's networking subsystem:
// listener and socket lifecycle, DNS resolution, and TLS-wrapped connections.
//
// The variant set is closed within this package, but the package itself is
// just one of many loosely-coupled error sources consumed by the errclass
// registry. Variants that wrap another failure expose it through Unwrap so
// callers can inspect the cause structurally.
package net

import "fmt"

// ErrorKind identifies a networking failure mode.
type ErrorKind int

const (
	// KindListenerClosed indicates an operation on a closed listener.
	KindListenerClosed ErrorKind = iota

	// KindListenerBusy indicates another accept is already in flight.
	KindListenerBusy

	// KindSocketClosed indicates an operation on a closed socket.
	KindSocketClosed

	// KindSocketNotConnected indicates the socket was closed before connecting.
	KindSocketNotConnected

	// KindSocketBusy indicates the socket is in use by another operation.
	KindSocketBusy

	// KindIO wraps an operating-system I/O failure.
	KindIO

	// KindAcceptPending indicates an accept task is already running.
	KindAcceptPending

	// KindRootCertStore wraps a failure loading the root certificate store.
	KindRootCertStore

	// KindPermission wraps a failed permission check.
	KindPermission

	// KindResource wraps a resource-table failure.
	KindResource

	// KindNoResolvedAddress indicates resolution produced no usable address.
	KindNoResolvedAddress

	// KindAddrParse indicates a malformed network address.
	KindAddrParse

	// KindCanceled indicates the operation was canceled.
	KindCanceled

	// KindDNSNotFound indicates the hostname does not resolve.
	KindDNSNotFound

	// KindDNSNotConnected indicates the resolver could not be reached.
	KindDNSNotConnected

	// KindDNSTimedOut indicates the DNS query timed out.
	KindDNSTimedOut

	// KindDNS indicates any other resolver failure.
	KindDNS

	// KindUnsupportedRecordType indicates an unsupported DNS record type.
	KindUnsupportedRecordType

	// KindInvalidUTF8 indicates non-UTF-8 data where text was required.
	KindInvalidUTF8

	// KindUnexpectedKeyType indicates an unexpected TLS key type.
	KindUnexpectedKeyType

	// KindInvalidHostname indicates a hostname that fails validation.
	KindInvalidHostname

	// KindStreamBusy indicates the TCP stream is in use by another operation.
	KindStreamBusy

	// KindTLSLibrary indicates an opaque TLS library failure.
	KindTLSLibrary

	// KindTLS wraps a classified TLS subsystem failure.
	KindTLS

	// KindListenTLSRequiresKey indicates a TLS listener without a key pair.
	KindListenTLSRequiresKey

	// KindReunite indicates stream halves from different sockets were rejoined.
	KindReunite
)

// Error is the networking subsystem's error type. Kind selects the variant;
// Err carries the wrapped cause for wrapping variants and is nil otherwise.
// Hostname is set for DNS and hostname-validation variants.
type Error struct {
	Kind     ErrorKind
	Err      error
	Hostname string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindListenerClosed:
		return "listener has been closed"
	case KindListenerBusy:
		return "listener already in use"
	case KindSocketClosed:
		return "socket has been closed"
	case KindSocketNotConnected:
		return "socket was closed before connecting"
	case KindSocketBusy:
		return "socket already in use"
	case KindIO:
		return fmt.Sprintf("io error: %v", e.Err)
	case KindAcceptPending:
		return "another accept task is ongoing"
	case KindRootCertStore:
		return fmt.Sprintf("failed to load root certificate store: %v", e.Err)
	case KindPermission:
		return fmt.Sprintf("permission check failed: %v", e.Err)
	case KindResource:
		return fmt.Sprintf("resource error: %v", e.Err)
	case KindNoResolvedAddress:
		return "no resolved address found"
	case KindAddrParse:
		return "failed to parse address"
	case KindCanceled:
		return "operation canceled"
	case KindDNSNotFound:
		return fmt.Sprintf("no record found for %q", e.Hostname)
	case KindDNSNotConnected:
		return "resolver not connected"
	case KindDNSTimedOut:
		return "dns query timed out"
	case KindDNS:
		return fmt.Sprintf("dns error: %v", e.Err)
	case KindUnsupportedRecordType:
		return "unsupported record type"
	case KindInvalidUTF8:
		return "invalid utf-8 in network data"
	case KindUnexpectedKeyType:
		return "unexpected key type"
	case KindInvalidHostname:
		return fmt.Sprintf("invalid hostname: %q", e.Hostname)
	case KindStreamBusy:
		return "tcp stream already in use"
	case KindTLSLibrary:
		return fmt.Sprintf("tls library error: %v", e.Err)
	case KindTLS:
		return fmt.Sprintf("tls error: %v", e.Err)
	case KindListenTLSRequiresKey:
		return "a key is required for a tls listener"
	case KindReunite:
		return "cannot reunite halves of different streams"
	default:
		return "unknown network error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// MapErrorKind identifies a failure while mapping a raw socket into the
// runtime's resource table.
type MapErrorKind int

const (
	// MapKindIO wraps an operating-system I/O failure.
	MapKindIO MapErrorKind = iota

	// MapKindNoResources indicates the resource table is exhausted.
	MapKindNoResources
)

// MapError is raised while registering a socket with the resource table.
type MapError struct {
	Kind MapErrorKind
	Err  error
}

func (e *MapError) Error() string {
	switch e.Kind {
	case MapKindIO:
		return fmt.Sprintf("io error: %v", e.Err)
	case MapKindNoResources:
		return "no resources available"
	default:
		return "unknown map error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *MapError) Unwrap() error {
	return e.Err
}
