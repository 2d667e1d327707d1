package hashing

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ProfileKey identifies a cached move profile. Mode distinguishes the
// different profile flavours a caller computes for the same square.
type ProfileKey struct {
	Hash   uint64
	Square chess.Square
	Mode   uint8
}

// ProfileCache stores move profiles with mutex protection for concurrent access.
// Entries are keyed by position hash, so a changed position never reads a
// stale profile. When the cache reaches its capacity it is cleared.
type ProfileCache struct {
	mu          sync.RWMutex
	entries     map[ProfileKey]chess.Matrix
	maxCapacity int
	hits        atomic.Uint64
	misses      atomic.Uint64
}

// NewProfileCache creates a new profile cache.
// maxCapacity of 0 means unlimited capacity.
func NewProfileCache(maxCapacity int) *ProfileCache {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &ProfileCache{
		entries:     make(map[ProfileKey]chess.Matrix),
		maxCapacity: maxCapacity,
	}
}

// Get returns the cached profile for key, if any.
func (c *ProfileCache) Get(key ProfileKey) (chess.Matrix, bool) {
	c.mu.RLock()
	m, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return m, ok
}

// Put stores a profile.
func (c *ProfileCache) Put(key ProfileKey, m chess.Matrix) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity {
		c.entries = make(map[ProfileKey]chess.Matrix)
	}
	c.entries[key] = m
}

// Len returns the number of cached profiles.
func (c *ProfileCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the number of hits and misses since the last Reset.
func (c *ProfileCache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Reset clears all entries and statistics.
func (c *ProfileCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[ProfileKey]chess.Matrix)
	c.hits.Store(0)
	c.misses.Store(0)
}
