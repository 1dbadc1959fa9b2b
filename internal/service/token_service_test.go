package service

import (
	"errors"
	"testing"
	"time"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", 30*24*time.Hour, "frooxi")

	token, err := svc.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-1")
	}
	if time.Since(claims.IssuedAt) > time.Minute {
		t.Errorf("IssuedAt = %v, want close to now", claims.IssuedAt)
	}
}

func TestTokenService_VerifyExpired(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, "frooxi")

	// Issue in the past, verify in the present
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	svc.now = time.Now
	_, err = svc.Verify(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Verify() error = %v, want ErrTokenExpired", err)
	}
}

func TestTokenService_VerifyMalformed(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, "frooxi")

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			if !errors.Is(err, ErrTokenMalformed) {
				t.Errorf("Verify(%q) error = %v, want ErrTokenMalformed", tt.token, err)
			}
		})
	}
}

func TestTokenService_VerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour, "frooxi")
	verifier := NewTokenService("secret-b", time.Hour, "frooxi")

	token, err := issuer.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = verifier.Verify(token)
	if !errors.Is(err, ErrTokenMalformed) {
		t.Errorf("Verify() error = %v, want ErrTokenMalformed", err)
	}
}

func TestTokenService_ExpiredBeatsWrongSignatureClassification(t *testing.T) {
	// An expired token with a valid signature must be reported as expired,
	// not malformed, so clients know to re-authenticate rather than retry.
	svc := NewTokenService("test-secret", time.Minute, "frooxi")
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, _ := svc.Issue("user-1")
	svc.now = time.Now

	_, err := svc.Verify(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Verify() error = %v, want ErrTokenExpired", err)
	}
}
