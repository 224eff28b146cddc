package httpc

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHttpc_SetsBaseURLAndAPIKey(t *testing.T) {
	var gotKey, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get(APIKeyHeader)
		gotPath = r.URL.Path
		w.WriteHeader(204)
	}))
	defer srv.Close()

	c := (&Httpc{BaseURL: srv.URL + "/", APIKey: "PMAK-1"}).New()
	resp, err := c.R().Get("/environments")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode() != 204 {
		t.Fatalf("expected 204, got %d", resp.StatusCode())
	}
	if gotKey != "PMAK-1" {
		t.Fatalf("expected api key header, got %q", gotKey)
	}
	if gotPath != "/environments" {
		t.Fatalf("expected /environments, got %q", gotPath)
	}
}

func TestHttpc_InsecureAllowsSelfSigned(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer srv.Close()

	if _, err := (&Httpc{}).New().R().Get(srv.URL); err == nil {
		t.Fatalf("expected error without insecure TLS, got nil")
	}

	c := (&Httpc{TlsConfig: &tls.Config{InsecureSkipVerify: true}}).New()
	resp, err := c.R().Get(srv.URL)
	if err != nil || resp.StatusCode() != 200 {
		t.Fatalf("expected 200 with insecure, got resp=%v err=%v", resp, err)
	}
}

func TestParseTLSVersion(t *testing.T) {
	tests := []struct {
		in   string
		want uint16
	}{
		{"1.2", tls.VersionTLS12},
		{"TLS13", tls.VersionTLS13},
		{" tls1.0 ", tls.VersionTLS10},
		{"", 0},
		{"weird", 0},
	}
	for _, tt := range tests {
		if got := ParseTLSVersion(tt.in); got != tt.want {
			t.Errorf("ParseTLSVersion(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
