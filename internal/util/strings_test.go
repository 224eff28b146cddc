package util

import "testing"

func TestTrimHelpers(t *testing.T) {
	if got := TrimAndLower("  JSON "); got != "json" {
		t.Fatalf("TrimAndLower = %q", got)
	}
	if v, ok := TrimEmptyCheck("   "); ok || v != "" {
		t.Fatalf("TrimEmptyCheck blank = %q, %v", v, ok)
	}
	if v, ok := TrimEmptyCheck(" acme "); !ok || v != "acme" {
		t.Fatalf("TrimEmptyCheck = %q, %v", v, ok)
	}
	if got := TrimWithDefault("", "Customer Demo"); got != "Customer Demo" {
		t.Fatalf("TrimWithDefault = %q", got)
	}
	if got := TrimWithDefault(" Acme ", "Customer Demo"); got != "Acme" {
		t.Fatalf("TrimWithDefault = %q", got)
	}
}

func TestEnsureLeadingSlash(t *testing.T) {
	tests := map[string]string{
		"health":    "/health",
		"/users":    "/users",
		"v1/orders": "/v1/orders",
	}
	for in, want := range tests {
		if got := EnsureLeadingSlash(in); got != want {
			t.Errorf("EnsureLeadingSlash(%q) = %q, want %q", in, got, want)
		}
	}
}
