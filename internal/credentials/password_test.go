package credentials

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("StrongP@ss1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "StrongP@ss1" {
		t.Fatal("hash must not equal the plaintext")
	}

	ok, err := VerifyPassword("StrongP@ss1", hash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if !ok {
		t.Error("expected matching password to verify")
	}

	ok, err = VerifyPassword("wrong", hash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if ok {
		t.Error("expected wrong password to fail")
	}
}

func TestHashPassword_Empty(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Error("expected error for empty password")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	_, err := VerifyPassword("pw", "not-a-bcrypt-hash")
	if err == nil {
		t.Error("expected error for malformed hash")
	}
}
