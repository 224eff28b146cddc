package reclaim

import "testing"

func TestIsDemoEnvironment(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Acme – Demo Environment", true},
		{"demo environment", true},
		{"Foo - Demo Environment", true},
		{"Enterprise Demo Environment", true},
		{"DEMO ENVIRONMENT copy", true},
		{"Production", false},
		{"Demo Env", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsDemoEnvironment(tt.name); got != tt.want {
			t.Errorf("IsDemoEnvironment(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsDemoCollection(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Enterprise – Acme Demo Collection", true},
		{"enterprise - billing", true},
		{"Enterprise Demo Collection", true},
		{"My demo collection", true},
		{"Enterprise APIs", false},
		{"Payments", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsDemoCollection(tt.name); got != tt.want {
			t.Errorf("IsDemoCollection(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
