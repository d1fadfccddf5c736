package services

import (
	"testing"
	"time"
)

func newTestJWTService() *JWTService {
	return &JWTService{
		TokenDuration: time.Hour,
		jwtSecretKey:  "test-secret",
	}
}

func TestJWTRoundTrip(t *testing.T) {
	svc := newTestJWTService()

	token, expTime, err := svc.ToJWT("device-abc123")
	if err != nil {
		t.Fatalf("ToJWT failed: %v", err)
	}
	if expTime.Before(time.Now()) {
		t.Fatal("expiry is in the past")
	}

	deviceID, err := svc.VerifyJWTToken(token)
	if err != nil {
		t.Fatalf("VerifyJWTToken failed: %v", err)
	}
	if deviceID != "device-abc123" {
		t.Fatalf("expected device id round trip, got %q", deviceID)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	svc := newTestJWTService()
	token, _, err := svc.ToJWT("device-abc123")
	if err != nil {
		t.Fatal(err)
	}

	other := &JWTService{TokenDuration: time.Hour, jwtSecretKey: "other-secret"}
	if _, err := other.VerifyJWTToken(token); err == nil {
		t.Fatal("expected verification failure with wrong secret")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := &JWTService{TokenDuration: -time.Hour, jwtSecretKey: "test-secret"}
	token, _, err := svc.ToJWT("device-abc123")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.VerifyJWTToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.ExtractTokenFromHeader("Bearer abc.def.ghi")
	if err != nil || token != "abc.def.ghi" {
		t.Fatalf("unexpected extraction result: %q, %v", token, err)
	}

	if _, err := svc.ExtractTokenFromHeader(""); err == nil {
		t.Fatal("expected error for missing header")
	}
	if _, err := svc.ExtractTokenFromHeader("Basic abc"); err == nil {
		t.Fatal("expected error for non-bearer header")
	}
}
