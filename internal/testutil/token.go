package testutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SigningKey signs test tokens. The front end never verifies signatures.
var SigningKey = []byte("test-signing-key")

// Token returns an HS256 JWT for subject expiring at exp
func Token(t testing.TB, subject string, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(exp.Add(-time.Hour)),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(SigningKey)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// TokenWithoutExpiry returns a JWT that has no exp claim
func TokenWithoutExpiry(t testing.TB, subject string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: subject}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(SigningKey)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}
