package cinder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goflare.io/cinder"
)

func TestStats_HitRate(t *testing.T) {
	c := newTestCache(t)

	assert.Equal(t, "0%", c.Stats().HitRate, "no reads yet")

	c.Set("k", "v")
	for i := 0; i < 3; i++ {
		_, ok := c.Get("k")
		require.True(t, ok)
	}
	_, ok := c.Get("missing")
	require.False(t, ok)

	stats := c.Stats()
	assert.Equal(t, int64(3), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, "75.00%", stats.HitRate)
}

func TestStats_Counters(t *testing.T) {
	c := newTestCache(t, cinder.WithMaxSize(2))

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3) // evicts
	c.Delete("b")
	c.Delete("b") // no-op

	stats := c.Stats()
	assert.Equal(t, int64(3), stats.Sets)
	assert.Equal(t, int64(1), stats.Evictions)
	assert.Equal(t, int64(1), stats.Deletes)
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, 2, stats.MaxSize)
}

func TestStats_MemoryUsage(t *testing.T) {
	c := newTestCache(t)

	c.Set("str", "some string payload")
	c.Set("bytes", []byte{1, 2, 3, 4})
	c.Set("struct", map[string]any{"id": 7, "name": "ada"})
	c.Set("unencodable", func() {}) // falls back to a flat cost

	stats := c.Stats()
	assert.NotEmpty(t, stats.MemoryUsage)
	assert.Contains(t, stats.MemoryUsage, "B")
}

func TestStats_Reset(t *testing.T) {
	c := newTestCache(t)

	c.Set("k", "v")
	c.Get("k")
	c.Get("missing")

	c.ResetStats()

	stats := c.Stats()
	assert.Equal(t, int64(0), stats.Hits)
	assert.Equal(t, int64(0), stats.Misses)
	assert.Equal(t, int64(0), stats.Sets)
	assert.Equal(t, "0%", stats.HitRate)
	assert.Equal(t, 1, stats.Size, "resetting stats keeps the entries")
}
