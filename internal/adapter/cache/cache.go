package cache

import (
	"sync"
	"time"

	"tweetpulse/internal/domain/sentiment"
)

type entry struct {
	result    *sentiment.AnalysisResult
	timestamp time.Time
}

// ResultCache is a TTL cache of analysis results with an optional
// capacity bound. When the bound is exceeded the least recently
// written entry is evicted. Reads and writes are atomic per key.
type ResultCache struct {
	mu       sync.RWMutex
	entries  map[string]entry
	ttl      time.Duration
	capacity int

	now func() time.Time
}

// NewResultCache creates a cache with the given TTL and capacity.
// A capacity of zero or less means unbounded.
func NewResultCache(ttl time.Duration, capacity int) *ResultCache {
	return &ResultCache{
		entries:  make(map[string]entry),
		ttl:      ttl,
		capacity: capacity,
		now:      time.Now,
	}
}

// Get returns the cached result for key if it is still within the TTL.
func (c *ResultCache) Get(key string) (*sentiment.AnalysisResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.timestamp) >= c.ttl {
		return nil, false
	}
	return e.result, true
}

// GetStale returns the cached result for key regardless of expiry,
// along with the entry's age. Expired entries stay readable here until
// evicted by capacity pressure; this backs the degraded-mode path that
// prefers recent real data over synthesized data.
func (c *ResultCache) GetStale(key string) (*sentiment.AnalysisResult, time.Duration, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, 0, false
	}
	return e.result, c.now().Sub(e.timestamp), true
}

// Put stores a result under key, overwriting any previous entry and
// evicting the least recently written entry if the capacity bound is
// exceeded.
func (c *ResultCache) Put(key string, result *sentiment.AnalysisResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{result: result, timestamp: c.now()}

	if c.capacity > 0 && len(c.entries) > c.capacity {
		var oldestKey string
		var oldest time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.timestamp.Before(oldest) {
				oldestKey = k
				oldest = e.timestamp
			}
		}
		delete(c.entries, oldestKey)
	}
}
