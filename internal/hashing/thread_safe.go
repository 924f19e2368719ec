package hashing

import (
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ThreadSafePerftCache wraps PerftCache with mutex protection so divide
// workers can share it.
type ThreadSafePerftCache struct {
	cache *PerftCache
	mu    sync.Mutex
}

// NewThreadSafePerftCache creates a new thread-safe cache.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePerftCache(maxCapacity int) *ThreadSafePerftCache {
	return &ThreadSafePerftCache{
		cache: NewPerftCache(maxCapacity),
	}
}

// Lookup returns the stored count for the position and depth.
func (c *ThreadSafePerftCache) Lookup(board *chess.Board, toMove chess.Colour, depth int) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Lookup(board, toMove, depth)
}

// Store records a count.
func (c *ThreadSafePerftCache) Store(board *chess.Board, toMove chess.Colour, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Store(board, toMove, depth, nodes)
}

// Len returns the number of stored entries.
func (c *ThreadSafePerftCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}

// Hits returns the number of successful lookups.
func (c *ThreadSafePerftCache) Hits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Hits()
}

// IsFull returns true if the cache has reached its capacity limit.
func (c *ThreadSafePerftCache) IsFull() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.IsFull()
}
