// Package frontcache defines the optional in-process byte store consulted
// before the network on reads.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly
// the same []byte that was previously passed to Set for a key (no
// prepended/appended metadata, no re-encoding, no mutation). The store frames
// and validates entries itself, so foreign bytes found under a cache key are
// treated as corruption and deleted.
//
// Entries are addressed by content fingerprint and therefore immutable;
// implementations never need to support invalidation beyond Del.
package frontcache

import "context"

// Frontcache is a minimal byte store. Must be safe for concurrent use.
type Frontcache interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value. May ignore cost if unsupported.
	// Returns ok=false when the store rejected the write under pressure.
	Set(ctx context.Context, key string, value []byte, cost int64) (ok bool, err error)

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
