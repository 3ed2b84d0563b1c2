// Package cache memoizes finished analysis reports for a fixed validity
// window, so repeated lookups within the window skip both upstream calls.
package cache

import (
	"fmt"
	"log"
	"sync"
	"time"

	"B3Advisor/internal/model"
)

// DefaultValidity is how long a stored report stays servable.
const DefaultValidity = 5 * time.Minute

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache is a concurrency-safe TTL map from (asset class, ticker, profile)
// to a finished report. Expired entries behave as misses on Get and are
// reclaimed by Sweep.
type Cache struct {
	mu       sync.RWMutex
	entries  map[string]entry
	validity time.Duration
	now      func() time.Time
}

// New creates a cache with the given validity window; zero selects
// DefaultValidity.
func New(validity time.Duration) *Cache {
	if validity <= 0 {
		validity = DefaultValidity
	}
	return &Cache{
		entries:  make(map[string]entry),
		validity: validity,
		now:      time.Now,
	}
}

// Key builds the canonical cache key for one analysis request.
func Key(class model.AssetClass, ticker string, profile model.Profile) string {
	return fmt.Sprintf("%s_%s_%s", class, ticker, profile)
}

// Get returns the stored value for key if it has not expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !c.now().Before(e.expiresAt) {
		return nil, false
	}
	log.Printf("[INFO] cache hit: %s", key)
	return e.value, true
}

// Set stores value under key, overwriting any previous entry and resetting
// its expiry to now + validity window.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, expiresAt: c.now().Add(c.validity)}
	log.Printf("[INFO] cache set: %s", key)
}

// Sweep removes every expired entry and reports how many were reclaimed.
// Lookups already treat expired entries as misses; sweeping just keeps the
// map from growing without bound across the ticker universe.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len reports how many entries are held, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
