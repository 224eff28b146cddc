package common

import (
	"strings"
	"testing"
)

func TestMasker_MaskValue(t *testing.T) {
	masker := NewMasker()

	tests := []struct {
		name     string
		key      string
		value    any
		expected any
	}{
		{name: "vendor header", key: "X-Api-Key", value: "PMAK-1", expected: Masked},
		{name: "postman key", key: "POSTMAN_API_KEY", value: "PMAK-1", expected: Masked},
		{name: "service key", key: "api_key", value: "demo-key", expected: Masked},
		{name: "token", key: "token", value: "abc", expected: Masked},
		{name: "plain key", key: "workspace", value: "ws-1", expected: "ws-1"},
		{name: "non-string value", key: "status", value: 500, expected: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := masker.MaskValue(tt.key, tt.value); got != tt.expected {
				t.Errorf("MaskValue(%q, %v) = %v, want %v", tt.key, tt.value, got, tt.expected)
			}
		})
	}
}

func TestMasker_MaskString(t *testing.T) {
	masker := NewMasker()

	tests := []struct {
		name  string
		input string
		leak  string
	}{
		{name: "header dump", input: "X-Api-Key: PMAK-abcdef", leak: "PMAK-abcdef"},
		{name: "json body", input: `{"api_key": "sk_live_1"}`, leak: "sk_live_1"},
		{name: "bearer", input: "Authorization: Bearer eyJhbGciOi", leak: "eyJhbGciOi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := masker.MaskString(tt.input)
			if strings.Contains(got, tt.leak) {
				t.Fatalf("MaskString(%q) = %q still contains secret", tt.input, got)
			}
		})
	}

	if got := masker.MaskString("name=Acme – Demo Environment"); got != "name=Acme – Demo Environment" {
		t.Fatalf("non-sensitive text altered: %q", got)
	}
}

func TestMasker_Disabled(t *testing.T) {
	masker := NewMasker()
	masker.SetEnabled(false)
	if masker.IsEnabled() {
		t.Fatal("expected masker disabled")
	}
	if got := masker.MaskValue("api_key", "x"); got != "x" {
		t.Fatalf("disabled masker changed value to %v", got)
	}
}
