package httpc

import (
	"crypto/tls"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// APIKeyHeader carries the vendor API key on every request.
const APIKeyHeader = "X-Api-Key"

// Httpc describes how a resty client is built for one remote API.
type Httpc struct {
	BaseURL   string
	APIKey    string
	TlsConfig *tls.Config
	// Timeout of zero keeps resty's default (no client-side timeout).
	Timeout time.Duration
}

// New returns a resty.Client configured according to the receiver.
// MinVersion defaults to TLS1.2 when a TLS config is given without one.
func (h *Httpc) New() *resty.Client {
	c := resty.New()
	if base := strings.TrimRight(strings.TrimSpace(h.BaseURL), "/"); base != "" {
		c.SetBaseURL(base)
	}
	if h.APIKey != "" {
		c.SetHeader(APIKeyHeader, h.APIKey)
	}
	c.SetHeader("Accept", "application/json")
	if h.Timeout > 0 {
		c.SetTimeout(h.Timeout)
	}
	cfg := h.TlsConfig
	if cfg == nil {
		return c
	}
	if cfg.MinVersion == 0 {
		cfg.MinVersion = tls.VersionTLS12
	}
	c.SetTLSClientConfig(cfg)
	return c
}

// ParseTLSVersion converts "1.2", "12", "tls1.2" and similar spellings to the
// crypto/tls constant. Unknown input yields 0.
func ParseTLSVersion(version string) uint16 {
	switch strings.TrimSpace(strings.ToLower(version)) {
	case "1.0", "10", "tls1.0", "tls10":
		return tls.VersionTLS10
	case "1.1", "11", "tls1.1", "tls11":
		return tls.VersionTLS11
	case "1.2", "12", "tls1.2", "tls12":
		return tls.VersionTLS12
	case "1.3", "13", "tls1.3", "tls13":
		return tls.VersionTLS13
	default:
		return 0
	}
}
