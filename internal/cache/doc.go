// Package cache provides a small, bounded lookup cache.
//
// # Ring[K, V]
//
// A fixed-capacity cache with FIFO replacement. Entries are appended while
// capacity remains; once full, the slot under a rotating write cursor is
// overwritten and the cursor advances, wrapping to zero. Reads never change
// the eviction order, so Ring is not an LRU cache.
//
//	ring := cache.NewRing[rune, int](64)
//	ring.Put('A', 33)
//	idx, ok := ring.Get('A')
//
// A capacity of zero disables caching: Put is a no-op and Get always misses.
//
// # Thread Safety
//
// Ring is not safe for concurrent use. It is meant to be owned by a single
// rendering context, like the font handle that embeds it.
package cache
