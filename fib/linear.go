package fib

import (
	"sync"

	"github.com/zeckcodec/zeck/internal/bignat"
	"github.com/zeckcodec/zeck/internal/zlog"
)

// logChunk is the cache-growth granularity at which LinearCache emits a
// Debug log line; purely observational, chosen to avoid spamming on every
// single extension.
const logChunk = 1000

// LinearCache is the slow-iterative, memoized Fibonacci algorithm: a dense
// cache[0..=maxReached], extended by the recurrence F(i)=F(i-1)+F(i-2).
//
// Readers take the read lock; writers (cache extension) take the write
// lock and re-check under it before extending, a double-checked-lock
// shape that keeps extension serialized while letting reads of already-
// computed entries proceed concurrently.
type LinearCache struct {
	mu    sync.RWMutex
	cache []Nat
}

// NewLinearCache creates a cache seeded with F(0)=0, F(1)=1.
func NewLinearCache() *LinearCache {
	return &LinearCache{cache: []Nat{
		bignat.FromUint64(0),
		bignat.FromUint64(1),
	}}
}

// F returns F(n), extending the cache under the write lock if necessary.
func (c *LinearCache) F(n uint64) Nat {
	c.mu.RLock()
	if n < uint64(len(c.cache)) {
		v := c.cache[n]
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	for uint64(len(c.cache)) <= n {
		k := len(c.cache)
		next := c.cache[k-1].Add(c.cache[k-2])
		c.cache = append(c.cache, next)
		if k%logChunk == 0 {
			zlog.L().Debug().Int("high_water_fi", k).Msg("fib: linear cache extended")
		}
	}
	return c.cache[n]
}

// Len reports the current high-water FI plus one, for diagnostics.
func (c *LinearCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}
