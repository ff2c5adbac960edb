package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token errors
var (
	ErrMalformedToken = errors.New("malformed token")
	ErrTokenExpired   = errors.New("token expired")
)

// parser reads claims without verifying the signature. The remote API
// signs tokens; the front end only needs the expiry.
var parser = jwt.NewParser()

// ExpiresAt returns the expiry embedded in a JWT's exp claim
func ExpiresAt(token string) (time.Time, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, ErrMalformedToken
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrMalformedToken
	}
	return claims.ExpiresAt.Time, nil
}

// CheckToken returns nil if the token's expiry is strictly after now
func CheckToken(token string, now time.Time) error {
	exp, err := ExpiresAt(token)
	if err != nil {
		return err
	}
	if !exp.After(now) {
		return ErrTokenExpired
	}
	return nil
}
