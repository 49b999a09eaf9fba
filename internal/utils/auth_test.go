package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vyapardesk/billing-api/internal/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		SecretKey: "test-secret",
		Issuer:    "billing-test",
		Audience:  "billing-test",
		Algorithm: "HS256",
		Expiry:    time.Hour,
	}
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := testJWTConfig()

	token, err := GenerateJWT(models.JWT{
		ID:       7,
		Name:     "Asha",
		Username: "asha",
		Role:     "admin",
	}, cfg)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	parsed, err := ParseJWT(token, cfg)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed.ID != 7 || parsed.Username != "asha" || parsed.Role != "admin" {
		t.Fatalf("claims mismatch: %+v", parsed)
	}
	if parsed.Issuer != cfg.Issuer || parsed.Audience != cfg.Audience {
		t.Fatalf("issuer/audience mismatch: %+v", parsed)
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateJWT(models.JWT{ID: 1, Username: "x"}, cfg)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	bad := cfg
	bad.SecretKey = "other-secret"
	if _, err := ParseJWT(token, bad); err == nil {
		t.Fatal("token signed with a different secret must be rejected")
	}
}

func TestParseJWTToleratesMissingClaims(t *testing.T) {
	cfg := testJWTConfig()

	// validly signed token carrying only an exp claim
	raw := jwt.NewWithClaims(jwt.GetSigningMethod(cfg.Algorithm), jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString([]byte(cfg.SecretKey))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	parsed, err := ParseJWT(token, cfg)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed.ID != 0 || parsed.Username != "" || parsed.Role != "" {
		t.Fatalf("missing claims should zero out, got %+v", parsed)
	}
	if parsed.ExpiresAt == 0 {
		t.Fatal("exp claim should be carried through")
	}
}
