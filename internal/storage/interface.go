package storage

import "context"

// Storage is durable key/value storage scoped to a single browser client.
// It mirrors what a browser's local storage offers: string keys mapped to
// string values, with multi-key writes and removals applied atomically.
type Storage interface {
	// GetItems returns the stored values for the requested keys.
	// Missing keys are absent from the returned map.
	GetItems(ctx context.Context, clientID string, keys ...string) (map[string]string, error)

	// SetItems stores every key/value pair or none of them
	SetItems(ctx context.Context, clientID string, items map[string]string) error

	// RemoveItems deletes the keys; removing a missing key is not an error
	RemoveItems(ctx context.Context, clientID string, keys ...string) error
}
