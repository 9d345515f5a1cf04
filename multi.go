package cinder

import "time"

// GetMulti 獲取多個快取項目
//
// Keys that are absent or expired are omitted from the result entirely.
func (c *Cache) GetMulti(keys []string) map[string]any {
	result := make(map[string]any, len(keys))
	for _, key := range keys {
		if value, ok := c.Get(key); ok {
			result[key] = value
		}
	}
	return result
}

// SetMulti 設置多個快取項目
//
// Equivalent to repeated Set calls with a shared TTL, including eviction
// and statistics effects per key.
func (c *Cache) SetMulti(items map[string]any, ttl ...time.Duration) {
	for key, value := range items {
		c.Set(key, value, ttl...)
	}
}
