package remcache

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The store calls them on hot paths.
type Hooks interface {
	// The service answered 404 for a read (normal miss, not a fault).
	Miss(storageKey string)

	// A read completed with a status outside {200, 404}.
	ProtocolFault(storageKey string, statusCode int)

	// The service could not be reached or the socket failed mid-flight.
	// code ∈ {"timeout", "canceled", "dns", "connection_refused", "connection_reset", ""}
	TransportFault(storageKey string, code string)

	// A 200 body could not be decompressed or deserialized.
	// reason ∈ {"gunzip", "value_decode"}
	DecodeFault(storageKey string, reason string)

	// A write completed with a non-2xx status that was ignored on purpose
	// (write-path status blindness). Fired for observability only.
	WriteStatusIgnored(storageKey string, statusCode int)

	// A front-cache entry was deleted by the store on read.
	// reason ∈ {"corrupt", "value_decode"}
	FrontSelfHeal(storageKey, reason string)

	// Front cache returned ok=false on Set (backpressure/eviction).
	FrontSetRejected(storageKey string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Miss(string)                    {}
func (NopHooks) ProtocolFault(string, int)      {}
func (NopHooks) TransportFault(string, string)  {}
func (NopHooks) DecodeFault(string, string)     {}
func (NopHooks) WriteStatusIgnored(string, int) {}
func (NopHooks) FrontSelfHeal(string, string)   {}
func (NopHooks) FrontSetRejected(string)        {}
