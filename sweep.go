package cinder

import (
	"time"

	"go.uber.org/zap"
)

// Cleanup 移除所有已過期的快取項目，回傳移除的數量
//
// Sweep removals are a distinct lifecycle event: they count as neither
// misses, deletes, nor evictions.
func (c *Cache) Cleanup() int {
	now := time.Now()

	c.mu.Lock()
	removed := 0
	for key, e := range c.entries {
		if e.IsExpiredAt(now) {
			delete(c.entries, key)
			removed++
		}
	}
	c.mu.Unlock()

	return removed
}

// sweepLoop runs Cleanup every CheckInterval until stop is closed.
func (c *Cache) sweepLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(c.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if removed := c.Cleanup(); removed > 0 {
				c.logger.Debug("removed expired entries", zap.Int("count", removed))
			}
		}
	}
}
