package models

import (
	"time"

	"go.uber.org/atomic"
)

// Entry represents a cache entry.
//
// AccessCount and LastAccessTime are atomics so a read hit can bump them
// under the cache's read lock without upgrading to a write lock.
type Entry struct {
	Value          any
	AccessCount    *atomic.Int64
	LastAccessTime *atomic.Time
	Expiration     time.Time
	Sequence       uint64 // insertion order, breaks last-access ties during eviction
}

// NewEntry creates a new Entry. The access count starts at zero: it counts
// successful reads, not the creating write.
func NewEntry(value any, expiration time.Time, seq uint64) *Entry {
	return &Entry{
		Value:          value,
		AccessCount:    atomic.NewInt64(0),
		LastAccessTime: atomic.NewTime(time.Now()),
		Expiration:     expiration,
		Sequence:       seq,
	}
}

// IsExpiredAt reports whether the entry is expired at the given instant.
// An entry exactly at its expiration time is still live; lazy expiry and
// the background sweep both use this predicate, so they always agree.
func (e *Entry) IsExpiredAt(now time.Time) bool {
	return now.After(e.Expiration)
}

// Touch increments the access count and updates the last access time.
func (e *Entry) Touch(now time.Time) {
	e.AccessCount.Inc()
	e.LastAccessTime.Store(now)
}
