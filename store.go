package cinder

import (
	"time"

	"goflare.io/cinder/models"
	"goflare.io/cinder/utils"
)

// Set 設置快取項目
//
// Inserting a new key at capacity evicts exactly one entry first; updating
// an existing key never evicts. The access count of an updated entry is
// preserved.
func (c *Cache) Set(key string, value any, ttl ...time.Duration) {
	d := utils.GetExpirationTime(c.config.DefaultTTL, ttl...)
	now := time.Now()

	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		e.Value = value
		e.Expiration = now.Add(d)
		e.LastAccessTime.Store(now)
	} else {
		if len(c.entries) >= c.config.MaxSize {
			c.evictLocked()
		}
		c.seq++
		c.entries[key] = models.NewEntry(value, now.Add(d), c.seq)
	}
	c.mu.Unlock()

	c.metrics.Sets.Inc()
}

// Get 獲取快取項目
//
// An entry discovered expired here is removed immediately and the read
// counts as a miss.
func (c *Cache) Get(key string) (any, bool) {
	now := time.Now()

	c.mu.RLock()
	e, ok := c.entries[key]
	if !ok {
		c.mu.RUnlock()
		c.metrics.Misses.Inc()
		return nil, false
	}

	if !e.IsExpiredAt(now) {
		// Recency fields are atomics, so the hit path stays on the read lock.
		e.Touch(now)
		value := e.Value
		c.mu.RUnlock()
		c.metrics.Hits.Inc()
		return value, true
	}
	c.mu.RUnlock()

	c.mu.Lock()
	// Re-check under the write lock: the key may have been re-set or
	// removed between the two locks.
	e, ok = c.entries[key]
	if ok && e.IsExpiredAt(now) {
		delete(c.entries, key)
		c.mu.Unlock()
		c.metrics.Misses.Inc()
		return nil, false
	}
	if ok {
		e.Touch(now)
		value := e.Value
		c.mu.Unlock()
		c.metrics.Hits.Inc()
		return value, true
	}
	c.mu.Unlock()
	c.metrics.Misses.Inc()
	return nil, false
}

// Has 檢查快取項目是否存在
//
// Expiry semantics match Get, including lazy removal, but Has touches
// neither the statistics nor the entry's recency.
func (c *Cache) Has(key string) bool {
	now := time.Now()

	c.mu.RLock()
	e, ok := c.entries[key]
	if !ok {
		c.mu.RUnlock()
		return false
	}
	expired := e.IsExpiredAt(now)
	c.mu.RUnlock()

	if !expired {
		return true
	}

	c.mu.Lock()
	if e, ok = c.entries[key]; ok && e.IsExpiredAt(now) {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()
	return ok
}

// Delete 刪除快取項目，回傳項目是否存在
func (c *Cache) Delete(key string) bool {
	c.mu.Lock()
	_, ok := c.entries[key]
	if ok {
		delete(c.entries, key)
	}
	c.mu.Unlock()

	if ok {
		c.metrics.Deletes.Inc()
	}
	return ok
}

// Clear 清空所有快取項目
//
// Statistics counters are left untouched; use ResetStats for those.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*models.Entry)
	c.mu.Unlock()
}

// Keys 回傳目前持有的所有鍵
//
// Expired-but-unswept keys are included; no statistics are affected.
func (c *Cache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	return keys
}
