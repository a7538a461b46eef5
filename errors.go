package remcache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"
)

// Transport fault codes carried by TransportError.Code.
const (
	CodeTimeout     = "timeout"
	CodeCanceled    = "canceled"
	CodeDNS         = "dns"
	CodeConnRefused = "connection_refused"
	CodeConnReset   = "connection_reset"
)

// ProtocolError reports a completed HTTP exchange whose status was neither
// 200 nor 404. The server was reachable; it just refused or failed the request.
type ProtocolError struct {
	StatusCode int
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("HTTP error: %d", e.StatusCode)
}

// TransportError reports a connection-establishment or socket-level failure:
// DNS, refused/reset connections, or a timeout before the response arrived.
// Code is one of the Code* constants when the fault could be identified,
// empty otherwise.
type TransportError struct {
	Code string
	Err  error
}

func (e *TransportError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("transport error (%s): %v", e.Code, e.Err)
	}
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the fault was a deadline expiry.
func (e *TransportError) Timeout() bool { return e.Code == CodeTimeout }

// DecodeError reports a response body that could not be decompressed or
// deserialized even though the transport exchange itself succeeded. It
// usually means data corruption or a protocol mismatch with the service.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode cached value: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// classifyTransport wraps a request-level failure as a *TransportError,
// deriving Code from the underlying fault where possible.
func classifyTransport(err error) error {
	if err == nil {
		return nil
	}

	// http.Client wraps everything in *url.Error; classify the cause.
	var uerr *url.Error
	if errors.As(err, &uerr) {
		err = uerr.Err
	}

	code := ""
	var dnsErr *net.DNSError
	var nerr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		code = CodeTimeout
	case errors.Is(err, context.Canceled):
		code = CodeCanceled
	case errors.As(err, &dnsErr):
		code = CodeDNS
	case errors.Is(err, syscall.ECONNREFUSED):
		code = CodeConnRefused
	case errors.Is(err, syscall.ECONNRESET):
		code = CodeConnReset
	case errors.As(err, &nerr) && nerr.Timeout():
		code = CodeTimeout
	}
	return &TransportError{Code: code, Err: err}
}
