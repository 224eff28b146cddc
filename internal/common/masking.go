package common

import (
	"log/slog"
	"regexp"
	"strings"
)

// Masked is the replacement written in place of sensitive values.
const Masked = "***MASKED***"

// SensitivePattern detects a secret either by attribute key or by value shape.
type SensitivePattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Keys        []string // matched case-insensitively against attribute keys
}

// DefaultSensitivePatterns covers the credentials demosync handles: the
// vendor API key, the sample service key and bearer-style tokens.
var DefaultSensitivePatterns = []SensitivePattern{
	{
		Name:        "api_key",
		Regex:       regexp.MustCompile(`(?i)((?:x[_-])?(?:postman[_-])?api[_-]?key)["'\s]*[:=]["'\s]*([^"',}\]\s]+)`),
		Replacement: `${1}=` + Masked,
		Keys:        []string{"api_key", "apikey", "api-key", "x-api-key", "postman_api_key", "service_api_key", "api_key_value"},
	},
	{
		Name:        "token",
		Regex:       regexp.MustCompile(`(?i)((?:access[_-]?|auth[_-]?)?token)["'\s]*[:=]["'\s]*([^"',}\]\s]+)`),
		Replacement: `${1}=` + Masked,
		Keys:        []string{"token", "access_token", "auth_token"},
	},
	{
		Name:        "authorization",
		Regex:       regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9\-._~+/]+=*`),
		Replacement: "Bearer " + Masked,
		Keys:        []string{"authorization"},
	},
}

// Masker handles masking of sensitive information in logs
type Masker struct {
	patterns []SensitivePattern
	enabled  bool
}

// NewMasker creates a new masker with default patterns
func NewMasker() *Masker {
	return &Masker{patterns: DefaultSensitivePatterns, enabled: true}
}

// SetEnabled enables or disables masking
func (m *Masker) SetEnabled(enabled bool) {
	m.enabled = enabled
}

// IsEnabled returns whether masking is enabled
func (m *Masker) IsEnabled() bool {
	return m.enabled
}

// SensitiveKey reports whether an attribute key names a secret.
func (m *Masker) SensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, p := range m.patterns {
		for _, k := range p.Keys {
			if lower == k {
				return true
			}
		}
	}
	return false
}

// MaskString masks secrets embedded in free text.
func (m *Masker) MaskString(input string) string {
	if !m.enabled {
		return input
	}
	out := input
	for _, p := range m.patterns {
		out = p.Regex.ReplaceAllString(out, p.Replacement)
	}
	return out
}

// MaskValue masks value when key is sensitive, otherwise scrubs string values.
func (m *Masker) MaskValue(key string, value any) any {
	if !m.enabled {
		return value
	}
	if m.SensitiveKey(key) {
		return Masked
	}
	if s, ok := value.(string); ok {
		return m.MaskString(s)
	}
	return value
}

// ReplaceAttr is a slog.HandlerOptions.ReplaceAttr hook.
func (m *Masker) ReplaceAttr(_ []string, a slog.Attr) slog.Attr {
	if !m.enabled {
		return a
	}
	if m.SensitiveKey(a.Key) {
		return slog.String(a.Key, Masked)
	}
	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, m.MaskString(a.Value.String()))
	}
	return a
}
