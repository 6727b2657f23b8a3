package errclass

import (
	"errors"
	stdnet "net"

	"github.com/jmgilman/go/errclass/net"
	"github.com/jmgilman/go/errclass/tls"
)

// classifyNet maps a networking subsystem failure to its class. Lifecycle
// variants classify directly; I/O and cancellation causes delegate to the
// I/O leaf classifier; permission, resource, and cert-store causes are
// reclassified through the registry; TLS causes delegate to the TLS
// classifier.
func classifyNet(e *net.Error) Class {
	switch e.Kind {
	case net.KindListenerClosed, net.KindSocketClosed:
		return ClassBadResource
	case net.KindListenerBusy, net.KindSocketBusy,
		net.KindAcceptPending, net.KindStreamBusy:
		return ClassBusy
	case net.KindSocketNotConnected:
		return ClassNotConnected
	case net.KindIO:
		return classifyIO(e.Err)
	case net.KindRootCertStore, net.KindPermission, net.KindResource:
		return classifyOr(e.Err, ClassError)
	case net.KindCanceled:
		return ClassInterrupted
	case net.KindDNSNotFound:
		return ClassNotFound
	case net.KindDNSNotConnected:
		return ClassNotConnected
	case net.KindDNSTimedOut:
		return ClassTimedOut
	case net.KindUnsupportedRecordType:
		return ClassNotSupported
	case net.KindInvalidUTF8:
		return ClassInvalidData
	case net.KindInvalidHostname:
		return ClassTypeError
	case net.KindListenTLSRequiresKey:
		return ClassInvalidData
	case net.KindTLS:
		var tlsErr *tls.Error
		if errors.As(e.Err, &tlsErr) {
			return classifyTLS(tlsErr)
		}
		return ClassError
	default:
		// KindNoResolvedAddress, KindAddrParse, KindDNS,
		// KindUnexpectedKeyType, KindTLSLibrary, KindReunite.
		return ClassError
	}
}

// classifyNetMap maps a socket resource-mapping failure to its class.
func classifyNetMap(e *net.MapError) Class {
	switch e.Kind {
	case net.MapKindIO:
		return classifyIO(e.Err)
	default:
		return ClassError
	}
}

// classifyDNS maps the standard library's resolver errors to their class.
func classifyDNS(e *stdnet.DNSError) Class {
	switch {
	case e.IsNotFound:
		return ClassNotFound
	case e.IsTimeout:
		return ClassTimedOut
	default:
		return ClassError
	}
}
