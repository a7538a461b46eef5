// Package remcache implements a client for a remote HTTP(S) key-value cache
// service. Values are addressed by binary fingerprints, transferred as
// gzip-compressed payloads over persistent connections, and (de)serialized by
// a pluggable codec (JSON by default). The typical consumer is a build
// pipeline that caches expensive artifacts keyed by content hash.
//
// Components:
//   - Store[V]: the client API (Get/Set/Clear/Close).
//   - Codec[V]: (de)serializes V <-> []byte. JSON is the public wire contract.
//   - Frontcache: optional in-process byte store (e.g. Ristretto, BigCache)
//     consulted before the network on reads.
//   - Logger/Hooks: tiny leveled logging plus cheap callbacks for
//     high-signal events (misses, protocol faults, transport faults).
//
// Wire protocol:
//
//	GET {basePath}/{hex(key)}  -> 200 gzip(JSON) | 404 miss | other = protocol fault
//	PUT {basePath}/{hex(key)}  -> body gzip(JSON); response status is ignored
//
// Reads and writes use separate connection pools, each bounded to 64 sockets.
// A hit returns (v, true, nil); a miss returns (zero, false, nil). Faults are
// classified as *ProtocolError, *TransportError or *DecodeError and are never
// retried internally - retry policy belongs to the caller.
package remcache
