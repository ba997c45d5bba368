package jwt

import (
	"testing"
	"time"

	"github.com/ctoRVC/RV-Connect/config"
)

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:     "test-secret",
		ExpireTime: time.Hour,
		Issuer:     "rv-connect-test",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(testConfig())

	token, err := svc.GenerateToken("42", map[string]interface{}{"username": "alice"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.Subject != "42" {
		t.Fatalf("expected subject 42, got %q", claims.Subject)
	}
	if claims.Data["username"] != "alice" {
		t.Fatalf("expected username alice, got %v", claims.Data["username"])
	}
}

func TestGenerateTokenEmptyUserID(t *testing.T) {
	svc := NewJWTService(testConfig())
	if _, err := svc.GenerateToken("", nil); err == nil {
		t.Fatal("expected error for empty userID")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := NewJWTService(testConfig())
	token, err := svc.GenerateToken("42", nil)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	other := NewJWTService(config.JWTConfig{
		Secret:     "different-secret",
		ExpireTime: time.Hour,
		Issuer:     "rv-connect-test",
	})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("expected validation failure with wrong secret")
	}
}

func TestValidateTokenWrongIssuer(t *testing.T) {
	svc := NewJWTService(testConfig())
	token, err := svc.GenerateToken("42", nil)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	other := NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		ExpireTime: time.Hour,
		Issuer:     "someone-else",
	})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("expected validation failure with wrong issuer")
	}
}
