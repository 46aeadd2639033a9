package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestStaticPasswordPlain(t *testing.T) {
	az := StaticPassword{Plain: "Hello@123"}

	if !az.Authorize("Hello@123") {
		t.Error("correct password should authorize")
	}
	for _, pw := range []string{"", "hello@123", "Hello@1234"} {
		if az.Authorize(pw) {
			t.Errorf("Authorize(%q) = true, want false", pw)
		}
	}
}

func TestStaticPasswordHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("gizli-parola"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	az := StaticPassword{Hash: string(hash)}
	if !az.Authorize("gizli-parola") {
		t.Error("correct password should authorize against the hash")
	}
	if az.Authorize("baska-parola") {
		t.Error("wrong password must not authorize")
	}

	// Hash tanımlıysa düz parola devre dışıdır
	az.Plain = "baska-parola"
	if az.Authorize("baska-parola") {
		t.Error("plain password must be ignored when a hash is configured")
	}
}
