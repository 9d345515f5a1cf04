package cinder

import (
	"time"

	"go.uber.org/zap"
)

// Evict 移除最久未使用的快取項目，回傳是否有項目被移除
//
// Eviction ignores TTL entirely: a fresh but rarely-read entry goes before
// a stale but hot one.
func (c *Cache) Evict() bool {
	c.mu.Lock()
	ok := c.evictLocked()
	c.mu.Unlock()
	return ok
}

// evictLocked removes the entry with the oldest last access, ties broken by
// earliest insertion. Callers must hold mu.
func (c *Cache) evictLocked() bool {
	var (
		victim    string
		oldest    time.Time
		oldestSeq uint64
		found     bool
	)

	for key, e := range c.entries {
		last := e.LastAccessTime.Load()
		if !found || last.Before(oldest) || (last.Equal(oldest) && e.Sequence < oldestSeq) {
			victim = key
			oldest = last
			oldestSeq = e.Sequence
			found = true
		}
	}

	if !found {
		return false
	}

	delete(c.entries, victim)
	c.metrics.Evictions.Inc()
	c.logger.Debug("evicted least recently used entry",
		zap.String("key", victim),
		zap.Time("last_access", oldest))
	return true
}
