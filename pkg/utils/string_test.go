package utils

import "testing"

func TestGenerateRandomString(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateRandomString(8)
		if len(code) != 8 {
			t.Fatalf("code length = %d, want 8", len(code))
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Fatal("generator returned the same code 100 times")
	}
}

func TestGenerateNumericCode(t *testing.T) {
	code := GenerateNumericCode(6)
	if len(code) != 6 {
		t.Fatalf("code length = %d, want 6", len(code))
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			t.Fatalf("non-digit %q in numeric code %q", c, code)
		}
	}
}
