package remcache

import (
	"time"

	"github.com/klauspost/compress/gzip"
)

// Named defaults for the transport and compression setup. These are passed
// explicitly into the pool/encoder configuration rather than living as
// implicit literals at the call sites.
const (
	// DefaultTimeout bounds each request's connect/response wait and doubles
	// as the keep-alive refresh interval of both pools.
	DefaultTimeout = 5 * time.Second

	// DefaultMaxConnsPerPool caps concurrent and idle sockets per direction.
	DefaultMaxConnsPerPool = 64

	// DefaultCompressionLevel is applied to every Set payload.
	DefaultCompressionLevel = gzip.BestCompression
)

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
