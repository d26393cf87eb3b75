package service

import (
	"testing"
	"time"
)

const (
	testSecret       = "this-is-a-test-secret-with-32-bytes!"
	testAccessExpiry = time.Hour
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExpiry)

	token, err := svc.GenerateAccessToken(1, "testuser")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if token == "" {
		t.Error("GenerateAccessToken() should return non-empty token")
	}
}

func TestValidateToken_Success(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExpiry)

	token, err := svc.GenerateAccessToken(42, "testuser")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "testuser" {
		t.Errorf("Username = %q, want testuser", claims.Username)
	}
	if claims.Subject != "testuser" {
		t.Errorf("Subject = %q, want testuser", claims.Subject)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExpiry)
	other := NewJWTService("another-secret-that-is-long-enough", testAccessExpiry)

	token, err := svc.GenerateAccessToken(1, "testuser")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("ValidateToken() should reject token signed with different secret")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService(testSecret, -time.Minute)

	token, err := svc.GenerateAccessToken(1, "testuser")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("ValidateToken() should reject expired token")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExpiry)

	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Error("ValidateToken() should reject malformed token")
	}
}

func TestAccessExpiry(t *testing.T) {
	svc := NewJWTService(testSecret, 15*time.Minute)

	if got := svc.AccessExpiry(); got != 15*time.Minute {
		t.Errorf("AccessExpiry() = %v, want 15m", got)
	}
}
