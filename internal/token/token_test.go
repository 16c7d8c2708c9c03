package token

import (
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("has the documented shape", func(t *testing.T) {
		tok, err := New()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tok) != Len {
			t.Errorf("expected length %d, got %d (%q)", Len, len(tok), tok)
		}
		if !IsValid(tok) {
			t.Errorf("generated token %q does not validate", tok)
		}
	})

	t.Run("does not repeat", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			tok, err := New()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if seen[tok] {
				t.Fatalf("token %q generated twice", tok)
			}
			seen[tok] = true
		}
	})
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		name  string
		token string
		want  bool
	}{
		{"generated shape", "0123456789abcdef0123456789abcdef", true},
		{"empty", "", false},
		{"too short", "abc123", false},
		{"too long", "0123456789abcdef0123456789abcdef00", false},
		{"uppercase hex", "0123456789ABCDEF0123456789ABCDEF", false},
		{"non-hex characters", "0123456789abcdxy0123456789abcdef", false},
		{"path traversal", "../../../../etc/passwd1234567890", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValid(tc.token); got != tc.want {
				t.Errorf("IsValid(%q) = %v, want %v", tc.token, got, tc.want)
			}
		})
	}
}
