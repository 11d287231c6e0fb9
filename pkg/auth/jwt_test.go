package auth_test

import (
	"testing"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken("shopadmin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Username != "shopadmin" {
		t.Errorf("username = %q, want shopadmin", claims.Username)
	}
	if claims.Role != "admin" {
		t.Errorf("role = %q, want admin", claims.Role)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := auth.ValidateToken("not.a.jwt"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plain text")
	}

	if !auth.CheckPassword(hash, "s3cret-pass") {
		t.Error("correct password rejected")
	}
	if auth.CheckPassword(hash, "wrong-pass") {
		t.Error("wrong password accepted")
	}
}
