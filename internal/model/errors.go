package model

import "errors"

// Common errors used across the application
var (
	// Feed errors
	ErrPostNotFound = errors.New("post not found")
	ErrEmptyPost    = errors.New("post content is empty")
)
