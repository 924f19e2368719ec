package hashing

import "github.com/lgbarn/chess-rules-go/internal/chess"

// PerftCache remembers perft node counts by position and depth.
type PerftCache struct {
	// entries stores counts keyed by Zobrist hash and depth
	entries map[cacheKey]cacheEntry
	// maxCapacity limits stored entries (0 = unlimited)
	maxCapacity int
	hits        int
	misses      int
}

type cacheKey struct {
	hash  uint64
	depth int
}

type cacheEntry struct {
	weak  uint32
	nodes uint64
}

// NewPerftCache creates an empty cache. maxCapacity of 0 means unlimited.
func NewPerftCache(maxCapacity int) *PerftCache {
	return &PerftCache{
		entries:     make(map[cacheKey]cacheEntry),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored count for the position and depth.
func (c *PerftCache) Lookup(board *chess.Board, toMove chess.Colour, depth int) (uint64, bool) {
	key := cacheKey{hash: GenerateZobristHash(board, toMove), depth: depth}
	entry, ok := c.entries[key]
	if !ok || entry.weak != WeakHash(board) {
		c.misses++
		return 0, false
	}
	c.hits++
	return entry.nodes, true
}

// Store records a count. Once the cache is full new positions are dropped.
func (c *PerftCache) Store(board *chess.Board, toMove chess.Colour, depth int, nodes uint64) {
	key := cacheKey{hash: GenerateZobristHash(board, toMove), depth: depth}
	if _, ok := c.entries[key]; !ok && c.IsFull() {
		return
	}
	c.entries[key] = cacheEntry{weak: WeakHash(board), nodes: nodes}
}

// Len returns the number of stored entries.
func (c *PerftCache) Len() int {
	return len(c.entries)
}

// Hits returns the number of successful lookups.
func (c *PerftCache) Hits() int {
	return c.hits
}

// Misses returns the number of failed lookups.
func (c *PerftCache) Misses() int {
	return c.misses
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *PerftCache) IsFull() bool {
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}

// Reset clears all entries and counters.
func (c *PerftCache) Reset() {
	c.entries = make(map[cacheKey]cacheEntry)
	c.hits = 0
	c.misses = 0
}
