package errclass

import (
	"errors"
	stdnet "net"
	"regexp/syntax"

	"github.com/jmgilman/go/errclass/broadcast"
	"github.com/jmgilman/go/errclass/cache"
	"github.com/jmgilman/go/errclass/canvas"
	"github.com/jmgilman/go/errclass/cron"
	"github.com/jmgilman/go/errclass/env"
	"github.com/jmgilman/go/errclass/ffi"
	"github.com/jmgilman/go/errclass/gpu"
	"github.com/jmgilman/go/errclass/kv"
	"github.com/jmgilman/go/errclass/modres"
	"github.com/jmgilman/go/errclass/net"
	"github.com/jmgilman/go/errclass/tls"
	"github.com/jmgilman/go/errclass/web"
	"github.com/jmgilman/go/errclass/webstorage"
)

// Classify maps an opaque error to the exception class the embedding engine
// should raise for it. The error's self-declared class always wins; after
// that a fixed sequence of subsystem checks runs, each claiming exactly its
// own error type. The sequence order does not affect correctness, but it is
// fixed for determinism and ease of auditing. An error no check recognizes
// yields ("", false), never a panic: the caller maps that to its generic
// exception kind.
//
// Adding a subsystem means adding one probe to this sequence; existing
// subsystems are never touched.
func Classify(err error) (Class, bool) {
	if err == nil {
		return "", false
	}

	if c, ok := customClass(err); ok {
		return c, true
	}

	var gpuErr *gpu.Error
	if errors.As(err, &gpuErr) {
		return classifyGPU(gpuErr), true
	}
	if c, ok := classifyWebSocket(err); ok {
		return c, true
	}

	var webErr *web.Error
	if errors.As(err, &webErr) {
		return classifyWeb(webErr), true
	}
	var compressionErr *web.CompressionError
	if errors.As(err, &compressionErr) {
		return classifyWebCompression(compressionErr), true
	}
	var messagePortErr *web.MessagePortError
	if errors.As(err, &messagePortErr) {
		return classifyWebMessagePort(messagePortErr), true
	}
	var streamErr *web.StreamError
	if errors.As(err, &streamErr) {
		return classifyWebStream(streamErr), true
	}
	var blobErr *web.BlobError
	if errors.As(err, &blobErr) {
		return classifyWebBlob(blobErr), true
	}
	var patternErr *web.PatternError
	if errors.As(err, &patternErr) {
		return ClassTypeError, true
	}

	var irErr *ffi.IRError
	if errors.As(err, &irErr) {
		return ClassTypeError, true
	}
	var reprErr *ffi.ReprError
	if errors.As(err, &reprErr) {
		return classifyFFIRepr(reprErr), true
	}
	var dlfcnErr *ffi.DlfcnError
	if errors.As(err, &dlfcnErr) {
		return classifyFFIDlfcn(dlfcnErr), true
	}
	var staticErr *ffi.StaticError
	if errors.As(err, &staticErr) {
		return classifyFFIStatic(staticErr), true
	}
	var callbackErr *ffi.CallbackError
	if errors.As(err, &callbackErr) {
		return classifyFFICallback(callbackErr), true
	}
	var callErr *ffi.CallError
	if errors.As(err, &callErr) {
		return classifyFFICall(callErr), true
	}

	var tlsErr *tls.Error
	if errors.As(err, &tlsErr) {
		return classifyTLS(tlsErr), true
	}
	var cronErr *cron.Error
	if errors.As(err, &cronErr) {
		return classifyCron(cronErr), true
	}
	var canvasErr *canvas.Error
	if errors.As(err, &canvasErr) {
		return classifyCanvas(canvasErr), true
	}
	var cacheErr *cache.Error
	if errors.As(err, &cacheErr) {
		return classifyCache(cacheErr), true
	}
	var kvErr *kv.Error
	if errors.As(err, &kvErr) {
		return classifyKV(kvErr), true
	}
	var netErr *net.Error
	if errors.As(err, &netErr) {
		return classifyNet(netErr), true
	}
	var netMapErr *net.MapError
	if errors.As(err, &netMapErr) {
		return classifyNetMap(netMapErr), true
	}
	var broadcastErr *broadcast.Error
	if errors.As(err, &broadcastErr) {
		return classifyBroadcast(broadcastErr), true
	}
	var storageErr *webstorage.Error
	if errors.As(err, &storageErr) {
		return classifyWebStorage(storageErr), true
	}
	var dlopenErr *ffi.DlopenError
	if errors.As(err, &dlopenErr) {
		return classifyDlopen(dlopenErr), true
	}

	var varErr *env.VarError
	if errors.As(err, &varErr) {
		return classifyEnvVar(varErr), true
	}
	// URL errors wrap transport causes, so they are probed before the
	// generic I/O family.
	if c, ok := classifyURL(err); ok {
		return c, true
	}
	if c, ok := classifyIOError(err); ok {
		return c, true
	}
	var modresErr *modres.Error
	if errors.As(err, &modresErr) {
		return classifyModuleResolution(modresErr), true
	}
	if c, ok := classifyFSWatch(err); ok {
		return c, true
	}
	var regexpErr *syntax.Error
	if errors.As(err, &regexpErr) {
		return classifyRegexp(regexpErr), true
	}
	if c, ok := classifyParse(err); ok {
		return c, true
	}
	if c, ok := classifyX509(err); ok {
		return c, true
	}

	var dnsErr *stdnet.DNSError
	if errors.As(err, &dnsErr) {
		return classifyDNS(dnsErr), true
	}
	if c, ok := classifySqlite(err); ok {
		return c, true
	}
	if c, ok := classifyObjectStore(err); ok {
		return c, true
	}
	if c, ok := classifyPostgres(err); ok {
		return c, true
	}
	if c, ok := classifyRedis(err); ok {
		return c, true
	}
	if c, ok := classifyGRPC(err); ok {
		return c, true
	}

	return "", false
}

// ClassOrDefault classifies err, collapsing unclassified errors to the
// generic class. This is the form the embedding engine consumes when every
// failure must yield some exception.
func ClassOrDefault(err error) Class {
	if c, ok := Classify(err); ok {
		return c
	}
	return ClassError
}
