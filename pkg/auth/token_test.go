package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/warehousehq/warehouse-backend/pkg/config"
	"github.com/warehousehq/warehouse-backend/pkg/enums"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "warehouse-api",
		ExpirationMinutes: 6000,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()
	now := time.Now()

	token, err := MintAccessToken(cfg, now, AccessTokenPayload{UserID: userID, Role: enums.RoleStaff})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s got %s", userID, claims.UserID)
	}
	if claims.Role != enums.RoleStaff {
		t.Fatalf("expected staff role, got %s", claims.Role)
	}

	wantExpiry := now.Add(100 * time.Hour)
	if got := claims.ExpiresAt.Time; got.Sub(wantExpiry) > time.Second || wantExpiry.Sub(got) > time.Second {
		t.Fatalf("expected expiry ~%v got %v", wantExpiry, got)
	}
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	issued := time.Now().Add(-101 * time.Hour)

	token, err := MintAccessToken(cfg, issued, AccessTokenPayload{UserID: uuid.New(), Role: enums.RoleAdmin})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	if _, err := ParseAccessToken(cfg, token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{UserID: uuid.New(), Role: enums.RoleStaff})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	other := cfg
	other.Secret = "different"
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Fatal("expected signature mismatch to be rejected")
	}
}

func TestMintAccessTokenValidation(t *testing.T) {
	cfg := testJWTConfig()

	if _, err := MintAccessToken(config.JWTConfig{Issuer: "x", ExpirationMinutes: 1}, time.Now(), AccessTokenPayload{Role: enums.RoleStaff}); err == nil {
		t.Fatal("expected error without secret")
	}
	if _, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{Role: enums.Role("ghost")}); err == nil {
		t.Fatal("expected error for unknown role")
	}
}
