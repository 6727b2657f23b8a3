package errclass

import (
	"crypto/x509"
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/errclass/tls"
)

func TestClassifyTLS(t *testing.T) {
	tests := []struct {
		name string
		err  *tls.Error
		want Class
	}{
		{
			name: "missing certificate data",
			err:  &tls.Error{Kind: tls.KindCertsNotFound},
			want: ClassInvalidData,
		},
		{
			name: "missing key data",
			err:  &tls.Error{Kind: tls.KindKeysNotFound},
			want: ClassInvalidData,
		},
		{
			name: "invalid certificate",
			err:  &tls.Error{Kind: tls.KindCertInvalid},
			want: ClassInvalidData,
		},
		{
			name: "undecodable key",
			err:  &tls.Error{Kind: tls.KindKeyDecode},
			want: ClassInvalidData,
		},
		{
			name: "pem file load keeps io class",
			err: &tls.Error{
				Kind: tls.KindAddPEMFile,
				Err:  &fs.PathError{Op: "open", Path: "/certs/ca.pem", Err: os.ErrNotExist},
			},
			want: ClassNotFound,
		},
		{
			name: "library failure is generic",
			err:  &tls.Error{Kind: tls.KindLibrary, Err: errors.New("handshake failure")},
			want: ClassError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, ok := Classify(tt.err)
			require.True(t, ok)
			require.Equal(t, tt.want, class)
		})
	}
}

func TestClassifyX509(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Class
	}{
		{
			name: "invalid certificate",
			err:  x509.CertificateInvalidError{Reason: x509.Expired},
			want: ClassInvalidData,
		},
		{
			name: "unknown authority",
			err:  x509.UnknownAuthorityError{},
			want: ClassInvalidData,
		},
		{
			name: "hostname mismatch",
			err:  x509.HostnameError{Host: "example.com"},
			want: ClassInvalidData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, ok := Classify(tt.err)
			require.True(t, ok)
			require.Equal(t, tt.want, class)
		})
	}
}
