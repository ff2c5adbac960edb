package middleware

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"golang.org/x/crypto/hkdf"
)

const (
	clientCookieName = "passa_client"
	clientCookieAge  = 30 * 24 * time.Hour

	clientIDContextKey contextKey = "clientID"
)

// ClientCookies signs and encrypts the cookie naming a client's storage
type ClientCookies struct {
	codec  *securecookie.SecureCookie
	secure bool
}

// NewClientCookies derives the hash and block keys from secret
func NewClientCookies(secret string, secure bool) (*ClientCookies, error) {
	hashKey, err := deriveKey(secret, "passa client cookie hash", 64)
	if err != nil {
		return nil, err
	}
	blockKey, err := deriveKey(secret, "passa client cookie block", 32)
	if err != nil {
		return nil, err
	}

	codec := securecookie.New(hashKey, blockKey)
	codec.MaxAge(int(clientCookieAge / time.Second))
	return &ClientCookies{codec: codec, secure: secure}, nil
}

func deriveKey(secret, info string, size int) ([]byte, error) {
	key := make([]byte, size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(info)), key); err != nil {
		return nil, fmt.Errorf("derive cookie key: %w", err)
	}
	return key, nil
}

// Encode returns the cookie value for clientID
func (c *ClientCookies) Encode(clientID string) (string, error) {
	return c.codec.Encode(clientCookieName, clientID)
}

// Decode returns the client ID inside a cookie value
func (c *ClientCookies) Decode(value string) (string, error) {
	var clientID string
	if err := c.codec.Decode(clientCookieName, value, &clientID); err != nil {
		return "", err
	}
	if _, err := uuid.Parse(clientID); err != nil {
		return "", err
	}
	return clientID, nil
}

// GetClientID returns the client ID resolved by ClientID
func GetClientID(ctx context.Context) string {
	id, _ := ctx.Value(clientIDContextKey).(string)
	return id
}

// ClientID resolves the visitor's client ID from its cookie, issuing a new
// one when the cookie is missing or fails verification
func ClientID(cookies *ClientCookies) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID := ""
			if cookie, err := r.Cookie(clientCookieName); err == nil {
				clientID, _ = cookies.Decode(cookie.Value)
			}

			if clientID == "" {
				clientID = uuid.NewString()
				value, err := cookies.Encode(clientID)
				if err != nil {
					ErrorPage(w, http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     clientCookieName,
					Value:    value,
					Path:     "/",
					MaxAge:   int(clientCookieAge / time.Second),
					HttpOnly: true,
					Secure:   cookies.secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), clientIDContextKey, clientID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
