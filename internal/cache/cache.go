// Package cache provides a bounded in-memory cache with per-entry TTL.
// It is a convenience for callers and is never consulted by the durable
// store, the sync engine or the validator.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// DefaultCapacity используется, если Options.Capacity <= 0
const DefaultCapacity = 1000

// Options configures a Cache
type Options struct {
	Now        func() time.Time // Now источник времени, по умолчанию time.Now
	DefaultTTL time.Duration    // DefaultTTL применяется при ttl == 0; 0 значит без срока
	Capacity   int
}

// Stats счетчики работы кэша
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"` // вытеснены по емкости
	Expired   int64 `json:"expired"`   // удалены по истечении TTL
}

type entry[V any] struct {
	expiresAt time.Time
	value     V
	key       string
}

// Cache is a capacity-bounded cache evicting in insertion order.
// Expired entries are dropped lazily on access.
type Cache[V any] struct {
	now      func() time.Time
	entries  map[string]*list.Element
	order    *list.List // от самой старой вставки к самой новой
	stats    Stats
	ttl      time.Duration
	capacity int
	mu       sync.Mutex
}

// New creates a cache
func New[V any](opts Options) *Cache[V] {
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Cache[V]{
		now:      opts.Now,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		ttl:      opts.DefaultTTL,
		capacity: opts.Capacity,
	}
}

// Set stores value under key. A zero ttl falls back to the default TTL,
// a negative one disables expiry. Re-setting an existing key counts as a fresh insertion.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.set(key, value, ttl)
}

// Get returns the value stored under key
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.get(key)
}

// GetOrCompute returns the cached value or stores the result of compute.
// compute runs without the lock held and may use the cache; if another
// caller stored key meanwhile, that value wins. Errors from compute are
// returned and nothing is cached.
func (c *Cache[V]) GetOrCompute(key string, ttl time.Duration, compute func() (V, error)) (V, error) {
	c.mu.Lock()
	value, ok := c.get(key)
	c.mu.Unlock()
	if ok {
		return value, nil
	}

	value, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		if e := elem.Value.(*entry[V]); !c.expired(e) {
			return e.value, nil
		}
	}

	c.set(key, value, ttl)
	return value, nil
}

// Delete removes key and reports whether it was present
func (c *Cache[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return false
	}
	c.remove(elem)
	return true
}

// Clear removes all entries. Stats are kept.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*list.Element)
	c.order.Init()
}

// Len returns the number of stored entries, expired ones included until
// they are touched
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}

// Stats returns a snapshot of the counters
func (c *Cache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stats
}

func (c *Cache[V]) get(key string) (V, bool) {
	var zero V

	elem, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		return zero, false
	}

	e := elem.Value.(*entry[V])
	if c.expired(e) {
		c.remove(elem)
		c.stats.Expired++
		c.stats.Misses++
		return zero, false
	}

	c.stats.Hits++
	return e.value, true
}

func (c *Cache[V]) set(key string, value V, ttl time.Duration) {
	if ttl == 0 {
		ttl = c.ttl
	}

	e := &entry[V]{key: key, value: value}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}

	if elem, ok := c.entries[key]; ok {
		c.remove(elem)
	}

	for c.order.Len() >= c.capacity {
		c.remove(c.order.Front())
		c.stats.Evictions++
	}

	c.entries[key] = c.order.PushBack(e)
}

func (c *Cache[V]) remove(elem *list.Element) {
	e := elem.Value.(*entry[V])
	delete(c.entries, e.key)
	c.order.Remove(elem)
}

func (c *Cache[V]) expired(e *entry[V]) bool {
	return !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt)
}
