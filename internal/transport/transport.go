// Package transport owns the client's two keep-alive connection pools and
// the request plumbing on top of them. Reads (GET) and writes (PUT) never
// share sockets: an exhausted read pool cannot stall writes and vice versa.
package transport

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/unkn0wn-root/remcache/internal/endpoint"
)

// Config sizes the pools. All fields must be resolved by the caller;
// the transport applies no defaults of its own.
type Config struct {
	Endpoint endpoint.Endpoint
	Timeout  time.Duration // per-request bound and keep-alive interval
	Family   int           // 0 (either), 4 or 6
	MaxConns int           // concurrent and idle socket ceiling per pool
}

// Transport holds one pool for GET traffic and one for PUT traffic.
// Socket checkout/checkin is entirely the pool's responsibility; operation
// logic never touches pool state. Pools are fixed at construction and are
// not resized.
type Transport struct {
	ep    endpoint.Endpoint
	read  *http.Client
	write *http.Client
}

func New(cfg Config) *Transport {
	return &Transport{
		ep:    cfg.Endpoint,
		read:  newPool(cfg),
		write: newPool(cfg),
	}
}

func newPool(cfg Config) *http.Client {
	network := "tcp"
	switch cfg.Family {
	case 4:
		network = "tcp4"
	case 6:
		network = "tcp6"
	}
	d := &net.Dialer{
		Timeout:   cfg.Timeout,
		KeepAlive: cfg.Timeout,
	}
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, addr string) (net.Conn, error) {
				return d.DialContext(ctx, network, addr)
			},
			MaxConnsPerHost:     cfg.MaxConns,
			MaxIdleConns:        cfg.MaxConns,
			MaxIdleConnsPerHost: cfg.MaxConns,
			IdleConnTimeout:     cfg.Timeout,
			// The store gzips both directions itself.
			DisableCompression: true,
		},
	}
}

// Get issues a read for the hex-encoded key over the read pool.
// The caller owns the response body and must drain it so the socket
// returns to the pool.
func (t *Transport) Get(ctx context.Context, hexKey string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.ep.KeyURL(hexKey), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept-Encoding", "gzip")
	return t.read.Do(req)
}

// Put sends body as the write request for the hex-encoded key over the
// write pool. The caller owns the response body.
func (t *Transport) Put(ctx context.Context, hexKey, contentType string, body io.Reader, length int64) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, t.ep.KeyURL(hexKey), body)
	if err != nil {
		return nil, err
	}
	req.ContentLength = length
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Content-Encoding", "gzip")
	return t.write.Do(req)
}

// Drain consumes and closes a response body so its socket is reusable.
func Drain(body io.ReadCloser) {
	if body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}

// CloseIdle releases idle sockets in both pools.
func (t *Transport) CloseIdle() {
	t.read.CloseIdleConnections()
	t.write.CloseIdleConnections()
}
