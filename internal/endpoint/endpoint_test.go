package endpoint

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Endpoint
	}{
		{
			name: "http default port",
			raw:  "http://cache.internal/v1/cache",
			want: Endpoint{Scheme: "http", Host: "cache.internal", Port: 80, BasePath: "/v1/cache"},
		},
		{
			name: "https default port",
			raw:  "https://cache.internal/v1/cache",
			want: Endpoint{Scheme: "https", Host: "cache.internal", Port: 443, BasePath: "/v1/cache"},
		},
		{
			name: "explicit port",
			raw:  "http://10.0.0.5:8080/cache",
			want: Endpoint{Scheme: "http", Host: "10.0.0.5", Port: 8080, BasePath: "/cache"},
		},
		{
			name: "trailing slash trimmed",
			raw:  "http://host/cache/",
			want: Endpoint{Scheme: "http", Host: "host", Port: 80, BasePath: "/cache"},
		},
		{
			name: "nested base path",
			raw:  "https://host:9443/api/v2/artifacts",
			want: Endpoint{Scheme: "https", Host: "host", Port: 9443, BasePath: "/api/v2/artifacts"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.raw)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.raw, err)
			}
			if got != tc.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"no scheme", "cache.internal/v1"},
		{"ftp scheme", "ftp://host/cache"},
		{"unix scheme", "unix:///var/run/cache.sock"},
		{"missing host", "http:///cache"},
		{"missing path", "http://host"},
		{"root path only", "http://host/"},
		{"port zero", "http://host:0/cache"},
		{"garbage port", "http://host:x/cache"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.raw); err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tc.raw)
			}
		})
	}
}

func TestKeyURL(t *testing.T) {
	ep, err := Parse("http://host:8080/v1/cache")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ep.KeyURL("deadbeef"), "http://host:8080/v1/cache/deadbeef"; got != want {
		t.Fatalf("KeyURL = %q, want %q", got, want)
	}

	ep, err = Parse("https://host/cache")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ep.KeyURL("00ff"), "https://host:443/cache/00ff"; got != want {
		t.Fatalf("KeyURL = %q, want %q", got, want)
	}
}
