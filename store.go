package remcache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/klauspost/compress/gzip"

	c "github.com/unkn0wn-root/remcache/codec"
	fc "github.com/unkn0wn-root/remcache/frontcache"
	"github.com/unkn0wn-root/remcache/internal/endpoint"
	"github.com/unkn0wn-root/remcache/internal/transport"
	"github.com/unkn0wn-root/remcache/internal/util"
	"github.com/unkn0wn-root/remcache/internal/wire"
)

const defaultContentType = "application/json"

type store[V any] struct {
	codec c.Codec[V]
	log   Logger
	hooks Hooks
	tr    *transport.Transport
	front fc.Frontcache
	cost  SetCostFunc

	level   int
	ctype   string
	enabled bool
}

func newStore[V any](opts Options[V]) (*store[V], error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("remcache: endpoint is required")
	}
	switch opts.Family {
	case 0, 4, 6:
	default:
		return nil, fmt.Errorf("remcache: invalid family %d (want 0, 4 or 6)", opts.Family)
	}

	ep, err := endpoint.Parse(opts.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("remcache: %w", err)
	}

	s := &store[V]{
		front:   opts.Front,
		enabled: !opts.Disabled,
		level:   DefaultCompressionLevel,
		ctype:   defaultContentType,
	}

	// defaults
	if opts.Codec != nil {
		s.codec = opts.Codec
	} else {
		s.codec = c.JSON[V]{}
	}
	s.log = coalesce[Logger](opts.Logger, NopLogger{})
	s.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})

	if opts.ComputeSetCost != nil {
		s.cost = opts.ComputeSetCost
	} else {
		s.cost = func(_ string, entry []byte) int64 { return int64(len(entry)) }
	}

	s.tr = transport.New(transport.Config{
		Endpoint: ep,
		Timeout:  coalesce(opts.Timeout, DefaultTimeout),
		Family:   opts.Family,
		MaxConns: DefaultMaxConnsPerPool,
	})
	return s, nil
}

func (s *store[V]) Enabled() bool { return s.enabled }

func (s *store[V]) Close(ctx context.Context) error {
	s.tr.CloseIdle()
	if s.front != nil {
		return s.front.Close(ctx)
	}
	return nil
}

func (s *store[V]) Get(ctx context.Context, key []byte) (V, bool, error) {
	var zero V
	if !s.enabled {
		return zero, false, nil
	}
	k := util.StorageKey(key)

	if v, ok := s.frontGet(ctx, k); ok {
		return v, true, nil
	}

	resp, err := s.tr.Get(ctx, k)
	if err != nil {
		return zero, false, s.transportFault(k, err)
	}
	defer transport.Drain(resp.Body)

	switch resp.StatusCode {
	case http.StatusNotFound:
		s.hooks.Miss(k)
		return zero, false, nil
	case http.StatusOK:
		// value present; decompress below
	default:
		s.hooks.ProtocolFault(k, resp.StatusCode)
		s.log.Debug("get rejected by service", Fields{"key": k, "status": resp.StatusCode})
		return zero, false, &ProtocolError{StatusCode: resp.StatusCode}
	}

	payload, err := gunzip(resp.Body)
	if err != nil {
		s.hooks.DecodeFault(k, "gunzip")
		return zero, false, &DecodeError{Err: err}
	}
	v, err := s.codec.Decode(payload)
	if err != nil {
		s.hooks.DecodeFault(k, "value_decode")
		return zero, false, &DecodeError{Err: err}
	}

	s.frontSet(ctx, k, payload)
	return v, true, nil
}

func (s *store[V]) Set(ctx context.Context, key []byte, value V) error {
	if !s.enabled {
		return nil
	}
	k := util.StorageKey(key)

	payload, err := s.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("remcache: encode value: %w", err)
	}
	// An empty serialization would publish an unreadable entry; store the
	// JSON literal null instead.
	if len(payload) == 0 {
		payload = []byte("null")
	}

	body, err := gzipPayload(payload, s.level)
	if err != nil {
		return fmt.Errorf("remcache: compress value: %w", err)
	}

	resp, err := s.tr.Put(ctx, k, s.ctype, bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return s.transportFault(k, err)
	}

	// Write-path status blindness is deliberate: the status code of a
	// completed exchange is never inspected for success/failure, only a
	// fault on the response stream fails the write. Callers depend on
	// fire-and-forget semantics here.
	status := resp.StatusCode
	_, derr := io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	if derr != nil {
		return s.transportFault(k, derr)
	}
	if status >= 300 {
		s.hooks.WriteStatusIgnored(k, status)
		s.log.Debug("write status ignored", Fields{"key": k, "status": status})
	}

	s.frontSet(ctx, k, payload)
	return nil
}

// Clear satisfies the uniform store contract expected by build pipelines.
// It is unimplemented on purpose: no network activity happens and callers
// must not depend on it having any effect.
func (s *store[V]) Clear(context.Context) error {
	return nil
}

func (s *store[V]) transportFault(k string, err error) error {
	terr := classifyTransport(err)
	var te *TransportError
	if errors.As(terr, &te) {
		s.hooks.TransportFault(k, te.Code)
	}
	s.log.Debug("transport fault", Fields{"key": k, "err": err})
	return terr
}

func (s *store[V]) frontGet(ctx context.Context, k string) (V, bool) {
	var zero V
	if s.front == nil {
		return zero, false
	}
	raw, ok, err := s.front.Get(ctx, k)
	if err != nil || !ok {
		return zero, false
	}
	payload, err := wire.Decode(raw)
	if err != nil {
		_ = s.front.Del(ctx, k) // self-heal corrupt
		s.hooks.FrontSelfHeal(k, "corrupt")
		return zero, false
	}
	v, err := s.codec.Decode(payload)
	if err != nil {
		_ = s.front.Del(ctx, k) // self-heal
		s.hooks.FrontSelfHeal(k, "value_decode")
		return zero, false
	}
	return v, true
}

func (s *store[V]) frontSet(ctx context.Context, k string, payload []byte) {
	if s.front == nil {
		return
	}
	entry := wire.Encode(payload)
	ok, err := s.front.Set(ctx, k, entry, s.cost(k, entry))
	if err != nil {
		s.log.Warn("front set error", Fields{"key": k, "err": err})
		return
	}
	if !ok {
		s.hooks.FrontSetRejected(k)
	}
}

// gunzip streams the body through a gzip reader and returns the fully
// decompressed bytes. The value codec only ever sees a complete stream;
// partial payloads are never decoded.
func gunzip(r io.Reader) ([]byte, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func gzipPayload(payload []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(payload); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
