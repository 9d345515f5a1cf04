package utils

import "time"

// GetExpirationTime resolves an optional variadic TTL against the default.
// Non-positive TTLs fall back to the default: a TTL must always be a
// positive duration.
func GetExpirationTime(defaultTTL time.Duration, ttl ...time.Duration) time.Duration {
	if len(ttl) > 0 && ttl[0] > 0 {
		return ttl[0]
	}
	return defaultTTL
}
