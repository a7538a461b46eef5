// Package endpoint parses and validates the cache service endpoint URL.
package endpoint

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// Endpoint is the resolved form of the configured endpoint URL.
// Owned by the client instance; never mutated after construction.
type Endpoint struct {
	Scheme   string // "http" or "https"
	Host     string
	Port     int
	BasePath string // no trailing slash
}

// Parse resolves raw into an Endpoint. The scheme is validated strictly:
// only "http" and "https" select a transport, anything else is rejected
// instead of being silently upgraded to TLS. Hostname and path are both
// required.
func Parse(raw string) (Endpoint, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Endpoint{}, fmt.Errorf("endpoint: parse %q: %w", raw, err)
	}

	var port int
	switch u.Scheme {
	case "http":
		port = 80
	case "https":
		port = 443
	default:
		return Endpoint{}, fmt.Errorf("endpoint: unsupported scheme %q (want http or https)", u.Scheme)
	}

	host := u.Hostname()
	if host == "" {
		return Endpoint{}, fmt.Errorf("endpoint: missing host in %q", raw)
	}

	if p := u.Port(); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 || n > 65535 {
			return Endpoint{}, fmt.Errorf("endpoint: invalid port %q in %q", p, raw)
		}
		port = n
	}

	path := strings.TrimSuffix(u.Path, "/")
	if path == "" {
		return Endpoint{}, fmt.Errorf("endpoint: missing base path in %q", raw)
	}

	return Endpoint{
		Scheme:   u.Scheme,
		Host:     host,
		Port:     port,
		BasePath: path,
	}, nil
}

// KeyURL renders the request URL addressing a hex-encoded key.
func (e Endpoint) KeyURL(hexKey string) string {
	hostport := net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
	return fmt.Sprintf("%s://%s%s/%s", e.Scheme, hostport, e.BasePath, hexKey)
}
