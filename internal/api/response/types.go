package response

import (
	"time"

	"github.com/passa-a-bola/passa-web/internal/model"
)

// Health is the body of the health endpoint
type Health struct {
	Status string `json:"status"`
}

// Collection is a filtered list plus the size of the unfiltered list
type Collection[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
	Total int `json:"total"`
}

// NewCollection wraps items taken from a collection of total records
func NewCollection[T any](items []T, total int) Collection[T] {
	if items == nil {
		items = []T{}
	}
	return Collection[T]{Items: items, Count: len(items), Total: total}
}

// Login is returned by the login proxy
type Login struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	ExpiresAt   time.Time  `json:"expires_at"`
	User        model.User `json:"user"`
}

// LoginRequest is the body of the login proxy
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
