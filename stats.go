package cinder

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats is a point-in-time snapshot of a cache instance.
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Sets      int64 `json:"sets"`
	Deletes   int64 `json:"deletes"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
	MaxSize   int   `json:"max_size"`

	// HitRate is hits/(hits+misses) rendered as a percentage, "0%" when
	// no reads have happened yet.
	HitRate string `json:"hit_rate"`

	// MemoryUsage is a rough serialized-size estimate of keys and values.
	// Approximate and non-authoritative.
	MemoryUsage string `json:"memory_usage"`
}

// fallbackValueCost stands in for values the configured encoder cannot
// measure.
const fallbackValueCost = 64

// Stats 回傳快取的運行統計
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	size := len(c.entries)
	bytes := c.approxBytesLocked()
	c.mu.RUnlock()

	hits := c.metrics.Hits.Load()
	misses := c.metrics.Misses.Load()

	hitRate := "0%"
	if total := hits + misses; total > 0 {
		hitRate = fmt.Sprintf("%.2f%%", float64(hits)/float64(total)*100)
	}

	return Stats{
		Hits:        hits,
		Misses:      misses,
		Sets:        c.metrics.Sets.Load(),
		Deletes:     c.metrics.Deletes.Load(),
		Evictions:   c.metrics.Evictions.Load(),
		Size:        size,
		MaxSize:     c.config.MaxSize,
		HitRate:     hitRate,
		MemoryUsage: humanize.Bytes(bytes),
	}
}

// ResetStats 歸零所有統計計數器，不影響快取內容
func (c *Cache) ResetStats() {
	c.metrics.Reset()
}

// approxBytesLocked sums key lengths and encoded value sizes. Callers must
// hold mu (read or write).
func (c *Cache) approxBytesLocked() uint64 {
	var total uint64
	for key, e := range c.entries {
		total += uint64(len(key)) + c.valueSize(e.Value)
	}
	return total
}

// valueSize measures one value with the configured encoder, counting bytes
// instead of keeping them.
func (c *Cache) valueSize(value any) uint64 {
	switch v := value.(type) {
	case string:
		return uint64(len(v))
	case []byte:
		return uint64(len(v))
	}

	var w countingWriter
	if err := c.config.Serialization.Encoder(&w).Encode(value); err != nil {
		return fallbackValueCost
	}
	return w.n
}

type countingWriter struct {
	n uint64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += uint64(len(p))
	return len(p), nil
}
