// Package cache holds the in-process, time-bounded store shared by the upstream clients.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

func (e entry[V]) fresh(now time.Time) bool {
	return now.Before(e.expiresAt)
}

// Stats is a point-in-time view of cache activity.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Sets    uint64
	Entries int
}

// Option customizes a TTL cache.
type Option func(*options)

type options struct {
	now        func() time.Time
	maxEntries int
}

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithMaxEntries bounds the number of stored keys. Zero or negative means unbounded.
func WithMaxEntries(n int) Option {
	return func(o *options) {
		o.maxEntries = n
	}
}

// TTL is a string-keyed store whose entries stop being visible once their expiry passes.
// A single mutex guards every read and write.
type TTL[V any] struct {
	mu         sync.Mutex
	items      map[string]entry[V]
	now        func() time.Time
	maxEntries int
	stats      Stats
}

// New constructs an empty TTL cache.
func New[V any](opts ...Option) *TTL[V] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &TTL[V]{
		items:      make(map[string]entry[V]),
		now:        o.now,
		maxEntries: o.maxEntries,
	}
}

// TryGet returns the value for key when an entry exists and its expiry is strictly in the future.
// Expired entries are left in place and overwritten by the next Set.
func (c *TTL[V]) TryGet(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok || !e.fresh(c.now()) {
		c.stats.Misses++
		var zero V
		return zero, false
	}
	c.stats.Hits++
	return e.value, true
}

// Set inserts or replaces the entry for key with expiry now+ttl.
func (c *TTL[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.items[key] = entry[V]{value: value, expiresAt: now.Add(ttl)}
	c.stats.Sets++
	c.enforceBound(key, now)
}

// Len reports the number of stored entries, including expired ones not yet overwritten.
func (c *TTL[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats returns a copy of the current counters.
func (c *TTL[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Entries = len(c.items)
	return s
}

// enforceBound drops expired entries first, then arbitrary ones, never the key just written.
// Callers must hold c.mu.
func (c *TTL[V]) enforceBound(keep string, now time.Time) {
	if c.maxEntries <= 0 || len(c.items) <= c.maxEntries {
		return
	}
	for k, e := range c.items {
		if k != keep && !e.fresh(now) {
			delete(c.items, k)
		}
	}
	for k := range c.items {
		if len(c.items) <= c.maxEntries {
			return
		}
		if k != keep {
			delete(c.items, k)
		}
	}
}
