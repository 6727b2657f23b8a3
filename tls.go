package errclass

import (
	"crypto/x509"
	"errors"

	"github.com/jmgilman/go/errclass/tls"
)

// classifyTLS maps a TLS subsystem failure to its class. Certificate and
// key material problems are invalid data; the failure to read a PEM file
// into the certificate store keeps its underlying I/O class.
func classifyTLS(e *tls.Error) Class {
	switch e.Kind {
	case tls.KindAddPEMFile:
		return classifyIO(e.Err)
	case tls.KindCertInvalid, tls.KindCertsNotFound,
		tls.KindKeysNotFound, tls.KindKeyDecode:
		return ClassInvalidData
	default:
		return ClassError
	}
}

// classifyX509 maps certificate verification failures from the standard
// library to their class.
func classifyX509(err error) (Class, bool) {
	var invalidErr x509.CertificateInvalidError
	if errors.As(err, &invalidErr) {
		return ClassInvalidData, true
	}
	var authorityErr x509.UnknownAuthorityError
	if errors.As(err, &authorityErr) {
		return ClassInvalidData, true
	}
	var hostnameErr x509.HostnameError
	if errors.As(err, &hostnameErr) {
		return ClassInvalidData, true
	}
	return "", false
}
