package cache

// Ring is a fixed-capacity FIFO cache.
//
// The zero value is a disabled cache with capacity 0.
type Ring[K comparable, V any] struct {
	index  map[K]int
	slots  []slot[K, V]
	cursor int
	cap    int

	hits      uint64
	misses    uint64
	evictions uint64
}

// slot holds one cached key/value pair.
type slot[K comparable, V any] struct {
	key   K
	value V
}

// NewRing creates a cache holding at most capacity entries.
// A negative capacity is treated as zero.
func NewRing[K comparable, V any](capacity int) *Ring[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Ring[K, V]{
		index: make(map[K]int, capacity),
		slots: make([]slot[K, V], 0, capacity),
		cap:   capacity,
	}
}

// Get returns the value stored for key.
// Returns (value, true) if found, (zero, false) otherwise.
// A hit does not affect eviction order.
func (r *Ring[K, V]) Get(key K) (V, bool) {
	if i, ok := r.index[key]; ok {
		r.hits++
		return r.slots[i].value, true
	}
	r.misses++
	var zero V
	return zero, false
}

// Put stores value for key.
//
// If key is already cached its value is replaced in place. Otherwise the
// entry is appended while capacity remains; once full, the entry under the
// write cursor is evicted and the cursor advances.
func (r *Ring[K, V]) Put(key K, value V) {
	if r.cap == 0 {
		return
	}
	if i, ok := r.index[key]; ok {
		r.slots[i].value = value
		return
	}
	if r.index == nil {
		r.index = make(map[K]int, r.cap)
	}

	if len(r.slots) < r.cap {
		r.index[key] = len(r.slots)
		r.slots = append(r.slots, slot[K, V]{key: key, value: value})
		return
	}

	old := r.slots[r.cursor]
	delete(r.index, old.key)
	r.evictions++

	r.slots[r.cursor] = slot[K, V]{key: key, value: value}
	r.index[key] = r.cursor
	r.cursor++
	if r.cursor == r.cap {
		r.cursor = 0
	}
}

// Len returns the number of entries in the cache.
func (r *Ring[K, V]) Len() int {
	return len(r.slots)
}

// Capacity returns the maximum number of entries.
func (r *Ring[K, V]) Capacity() int {
	return r.cap
}

// Clear removes all entries and resets the write cursor.
// Statistics are kept.
func (r *Ring[K, V]) Clear() {
	clear(r.index)
	clear(r.slots)
	r.slots = r.slots[:0]
	r.cursor = 0
}

// Stats returns cache statistics.
func (r *Ring[K, V]) Stats() Stats {
	s := Stats{
		Len:       len(r.slots),
		Capacity:  r.cap,
		Hits:      r.hits,
		Misses:    r.misses,
		Evictions: r.evictions,
	}
	if total := r.hits + r.misses; total > 0 {
		s.HitRate = float64(r.hits) / float64(total)
	}
	return s
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries.
	Capacity int
	// Hits is the number of successful Get calls.
	Hits uint64
	// Misses is the number of failed Get calls.
	Misses uint64
	// HitRate is the cache hit rate 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of entries overwritten by the write cursor.
	Evictions uint64
}
