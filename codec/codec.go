// Package codec defines value (de)serialization for the remote cache client.
//
// The public cache service speaks gzip-compressed JSON, so JSON is the
// default and the only codec that matches the public wire contract. The
// alternatives (Msgpack, CBOR, Protobuf, Bytes/String) exist for private
// deployments whose service accepts opaque payloads; the client compresses
// and transfers whatever the codec produces without interpreting it.
package codec

// Codec encodes/decodes values V to []byte for transfer and front-cache storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
