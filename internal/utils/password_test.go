package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Fatal("expected matching password to verify")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Fatal("expected mismatched password to fail")
	}
}

func TestCheckPasswordHashGarbageHash(t *testing.T) {
	if CheckPasswordHash("anything", "not-a-bcrypt-hash") {
		t.Fatal("expected garbage hash to fail verification")
	}
}
