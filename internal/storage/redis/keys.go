package redis

import "fmt"

// Key prefix for all front end data
const keyPrefix = "passa"

// clientKey returns the Redis hash holding one client's items
func clientKey(clientID string) string {
	return fmt.Sprintf("%s:client:%s", keyPrefix, clientID)
}
