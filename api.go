package remcache

import (
	"context"
	"time"

	c "github.com/unkn0wn-root/remcache/codec"
	fc "github.com/unkn0wn-root/remcache/frontcache"
)

// SetCostFunc computes the admission cost of a front-cache entry.
type SetCostFunc func(storageKey string, entry []byte) int64

// Cache is an alias for Store -> remcache.Cache[Artifact] or remcache.Store[Artifact].
type Cache[V any] = Store[V]

// Store is the remote cache client API. V is the caller's value type;
// serialization is handled by a pluggable Codec[V] (JSON by default).
// Keys are opaque byte fingerprints, rendered on the wire as lowercase hex.
type Store[V any] interface {
	Enabled() bool
	Close(context.Context) error

	// Get returns (v, true, nil) on hit and (zero, false, nil) on miss (HTTP 404).
	// Faults classify as *ProtocolError, *TransportError or *DecodeError.
	Get(ctx context.Context, key []byte) (v V, ok bool, err error)

	// Set publishes a value. The response status of the write is intentionally
	// NOT inspected: any completed exchange counts as success and only a
	// stream-level fault fails the operation. Callers relying on
	// fire-and-forget write semantics depend on this.
	Set(ctx context.Context, key []byte, value V) error

	// Clear is a documented no-op kept for store-interface uniformity.
	// It performs no network activity; callers must not depend on it
	// having any effect.
	Clear(ctx context.Context) error
}

// Options tune the behavior of the remote cache client.
// Only Endpoint is required; others have sensible defaults.
type Options[V any] struct {
	// Required. Base URL of the cache service, e.g. "https://cache.internal:8080/v1/artifacts".
	// The scheme must be exactly "http" or "https" and both host and path must
	// be present; anything else is a construction-time error.
	Endpoint string

	Codec   c.Codec[V]    // nil => codec.JSON[V]
	Logger  Logger        // if nil, NopLogger is used
	Hooks   Hooks         // if nil, NopHooks is used
	Timeout time.Duration // per-request bound; 0 => 5s
	Family  int           // IP version hint: 0 (either), 4 or 6

	// Front is an optional in-process byte cache consulted before the network
	// on Get and populated on Get hits and Sets. Fingerprint keys are
	// immutable, so front entries never need invalidation.
	Front          fc.Frontcache
	ComputeSetCost SetCostFunc // default: len(entry)

	Disabled bool // default false (enabled); a disabled store misses every Get and drops every Set
}

// New constructs a Store bound to the configured endpoint. Configuration is
// immutable after construction; an invalid endpoint or family fails here,
// never on first use.
func New[V any](opts Options[V]) (Store[V], error) {
	return newStore[V](opts)
}
