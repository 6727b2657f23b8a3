// Package tls defines the failure modes of the runtime's TLS subsystem:
// certificate and key material handling plus opaque TLS library failures.
package tls

import "fmt"

// ErrorKind identifies a TLS failure mode.
type ErrorKind int

const (
	// KindLibrary indicates an opaque failure inside the TLS library.
	KindLibrary ErrorKind = iota

	// KindAddPEMFile wraps the I/O failure hit while loading a PEM file
	// into the certificate store.
	KindAddPEMFile

	// KindCertInvalid indicates a certificate that failed to parse.
	KindCertInvalid

	// KindCertsNotFound indicates no certificates were found where expected.
	KindCertsNotFound

	// KindKeysNotFound indicates no keys were found where expected.
	KindKeysNotFound

	// KindKeyDecode indicates a key that failed to decode.
	KindKeyDecode
)

// Error is the TLS subsystem's error type. Err carries the wrapped I/O cause
// for KindAddPEMFile and the library cause for KindLibrary.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindLibrary:
		return fmt.Sprintf("tls error: %v", e.Err)
	case KindAddPEMFile:
		return fmt.Sprintf("unable to add pem file to certificate store: %v", e.Err)
	case KindCertInvalid:
		return "invalid certificate"
	case KindCertsNotFound:
		return "no certificates found in certificate data"
	case KindKeysNotFound:
		return "no keys found in key data"
	case KindKeyDecode:
		return "unable to decode key"
	default:
		return "unknown tls error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}
