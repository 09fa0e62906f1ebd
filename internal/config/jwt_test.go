package config

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("alice", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Username != "alice" || claims.Role != "admin" {
		t.Fatalf("claims = %q/%q, want alice/admin", claims.Username, claims.Role)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 7*time.Hour || ttl > 8*time.Hour {
		t.Fatalf("expiry %v away, want about 8h", ttl)
	}
}

func TestGenerateTokenMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateToken("alice", "admin"); !errors.Is(err, ErrSecretMissing) {
		t.Fatalf("err = %v, want ErrSecretMissing", err)
	}
	if _, err := ValidateToken("whatever"); !errors.Is(err, ErrSecretMissing) {
		t.Fatalf("err = %v, want ErrSecretMissing", err)
	}
}

func TestValidateTokenTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("alice", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ValidateToken(token + "x"); err == nil {
		t.Fatal("tampered token accepted")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken("alice", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	t.Setenv("JWT_SECRET", "other-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("token signed with another secret accepted")
	}
}
