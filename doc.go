// Package cinder 提供進程內的有界鍵值快取
//
// Cinder is a single-process, in-memory key/value cache with per-entry TTL
// expiration, LRU eviction under a fixed entry-count capacity, prefix and
// tag based group invalidation, and live operating statistics. A background
// sweep removes expired entries on a fixed interval; reads additionally
// expire entries lazily.
//
// Each Cache instance is fully independent and safe for concurrent use.
// Nothing is persisted across restarts and no state is shared between
// processes.
package cinder
