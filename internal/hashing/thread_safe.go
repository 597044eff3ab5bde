package hashing

import (
	"sync"
	"sync/atomic"
)

// cacheKey identifies an evaluation: the same position scores differently at
// different remaining depths.
type cacheKey struct {
	hash  uint64
	depth int
}

// EvalCache is a concurrency-safe map from (position, depth) to score.
// Once maxCapacity entries are stored, new entries are dropped.
type EvalCache struct {
	entries     map[cacheKey]float64
	maxCapacity int
	mu          sync.RWMutex

	hits   int64
	misses int64
}

// NewEvalCache creates an evaluation cache.
// maxCapacity of 0 means unlimited capacity.
func NewEvalCache(maxCapacity int) *EvalCache {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &EvalCache{
		entries:     make(map[cacheKey]float64),
		maxCapacity: maxCapacity,
	}
}

// Get returns the cached score for the position at depth.
func (c *EvalCache) Get(hash uint64, depth int) (float64, bool) {
	c.mu.RLock()
	score, ok := c.entries[cacheKey{hash, depth}]
	c.mu.RUnlock()
	if ok {
		atomic.AddInt64(&c.hits, 1)
	} else {
		atomic.AddInt64(&c.misses, 1)
	}
	return score, ok
}

// Put stores a score. It reports false when the cache is full and the entry
// was not already present.
func (c *EvalCache) Put(hash uint64, depth int, score float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := cacheKey{hash, depth}
	if _, ok := c.entries[key]; !ok && c.isFullLocked() {
		return false
	}
	c.entries[key] = score
	return true
}

// Len returns the number of cached scores.
func (c *EvalCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *EvalCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isFullLocked()
}

func (c *EvalCache) isFullLocked() bool {
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}

// Stats returns the number of cache hits and misses so far.
func (c *EvalCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Clear removes every entry and resets the statistics.
func (c *EvalCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]float64)
	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
}
