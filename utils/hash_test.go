package utils

import "testing"

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter22" {
		t.Fatalf("password stored in the clear")
	}
	if !CheckPasswordHash("hunter22", hash) {
		t.Fatalf("correct password rejected")
	}
	if CheckPasswordHash("hunter23", hash) {
		t.Fatalf("wrong password accepted")
	}
}

func TestGenerateRandomTokenLengthAndCharset(t *testing.T) {
	tok := GenerateRandomToken(6)
	if len(tok) != 6 {
		t.Fatalf("expected 6 chars, got %d", len(tok))
	}
	for _, c := range tok {
		ok := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
		if !ok {
			t.Fatalf("unexpected character %q in token", c)
		}
	}
}
