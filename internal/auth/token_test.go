package auth_test

import (
	"testing"
	"time"

	"github.com/ADITYA-lab-star/HuntBoard/internal/auth"
)

func TestTokens_RoundTrip(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)

	raw, err := tokens.Mint("user-123")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	userID, err := tokens.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("Verify subject = %q, want %q", userID, "user-123")
	}
}

func TestTokens_WrongSecret(t *testing.T) {
	minter := auth.NewTokens("secret-a", time.Hour)
	verifier := auth.NewTokens("secret-b", time.Hour)

	raw, err := minter.Mint("user-123")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if _, err := verifier.Verify(raw); err == nil {
		t.Error("Verify with wrong secret expected error, got nil")
	}
}

func TestTokens_Expired(t *testing.T) {
	tokens := auth.NewTokens("test-secret", -time.Minute)

	raw, err := tokens.Mint("user-123")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if _, err := tokens.Verify(raw); err == nil {
		t.Error("Verify of expired token expected error, got nil")
	}
}

func TestTokens_Garbage(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)
	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := tokens.Verify(raw); err == nil {
			t.Errorf("Verify(%q) expected error, got nil", raw)
		}
	}
}
