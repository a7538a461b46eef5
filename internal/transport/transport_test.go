package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/unkn0wn-root/remcache/internal/endpoint"
)

func newTestTransport(t *testing.T, handler http.HandlerFunc) (*Transport, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	ep, err := endpoint.Parse(srv.URL + "/cache")
	if err != nil {
		t.Fatal(err)
	}
	tr := New(Config{
		Endpoint: ep,
		Timeout:  5 * time.Second,
		MaxConns: 4,
	})
	t.Cleanup(tr.CloseIdle)
	return tr, srv
}

func TestGetRequestShape(t *testing.T) {
	var gotMethod, gotPath, gotAccept string
	tr, _ := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		gotAccept = r.Header.Get("Accept-Encoding")
		w.WriteHeader(http.StatusNotFound)
	})

	resp, err := tr.Get(context.Background(), "deadbeef")
	if err != nil {
		t.Fatal(err)
	}
	Drain(resp.Body)

	if gotMethod != http.MethodGet {
		t.Fatalf("method = %q, want GET", gotMethod)
	}
	if gotPath != "/cache/deadbeef" {
		t.Fatalf("path = %q, want /cache/deadbeef", gotPath)
	}
	if gotAccept != "gzip" {
		t.Fatalf("Accept-Encoding = %q, want gzip", gotAccept)
	}
}

func TestPutRequestShape(t *testing.T) {
	var gotMethod, gotPath, gotCT, gotCE string
	var gotLen int64
	var gotBody []byte
	tr, _ := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		gotCT = r.Header.Get("Content-Type")
		gotCE = r.Header.Get("Content-Encoding")
		gotLen = r.ContentLength
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	})

	body := "compressed bytes here"
	resp, err := tr.Put(context.Background(), "00ff", "application/json", strings.NewReader(body), int64(len(body)))
	if err != nil {
		t.Fatal(err)
	}
	Drain(resp.Body)

	if gotMethod != http.MethodPut {
		t.Fatalf("method = %q, want PUT", gotMethod)
	}
	if gotPath != "/cache/00ff" {
		t.Fatalf("path = %q, want /cache/00ff", gotPath)
	}
	if gotCT != "application/json" {
		t.Fatalf("Content-Type = %q", gotCT)
	}
	if gotCE != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", gotCE)
	}
	if gotLen != int64(len(body)) {
		t.Fatalf("ContentLength = %d, want %d", gotLen, len(body))
	}
	if string(gotBody) != body {
		t.Fatalf("body = %q, want %q", gotBody, body)
	}
}

func TestPoolsAreIndependent(t *testing.T) {
	tr, _ := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if tr.read == tr.write {
		t.Fatal("read and write must use separate clients")
	}
	if tr.read.Transport == tr.write.Transport {
		t.Fatal("read and write must use separate socket pools")
	}
}

func TestDrainNilBody(t *testing.T) {
	Drain(nil) // must not panic
}
