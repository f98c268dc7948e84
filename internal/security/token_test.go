package security

import "testing"

func TestRandomTokenIsUnique(t *testing.T) {
	first, err := RandomToken(32)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	second, err := RandomToken(32)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if first == "" || first == second {
		t.Fatalf("expected distinct non-empty tokens, got %q and %q", first, second)
	}
}

func TestSecureCompare(t *testing.T) {
	if !SecureCompare("admin123", "admin123") {
		t.Fatalf("expected equal strings to compare equal")
	}
	if SecureCompare("admin123", "admin124") {
		t.Fatalf("expected different strings to compare unequal")
	}
	if SecureCompare("admin123", "admin12") {
		t.Fatalf("expected different lengths to compare unequal")
	}
}
