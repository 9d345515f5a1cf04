package models

import "go.uber.org/atomic"

// Metrics stores cache statistics. Counters only move in response to the
// operations that own them; background sweeps touch none of them.
type Metrics struct {
	Hits      *atomic.Int64
	Misses    *atomic.Int64
	Sets      *atomic.Int64
	Deletes   *atomic.Int64
	Evictions *atomic.Int64
}

func NewMetrics() *Metrics {
	return &Metrics{
		Hits:      atomic.NewInt64(0),
		Misses:    atomic.NewInt64(0),
		Sets:      atomic.NewInt64(0),
		Deletes:   atomic.NewInt64(0),
		Evictions: atomic.NewInt64(0),
	}
}

// Reset zeroes every counter.
func (m *Metrics) Reset() {
	m.Hits.Store(0)
	m.Misses.Store(0)
	m.Sets.Store(0)
	m.Deletes.Store(0)
	m.Evictions.Store(0)
}
