package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// DefaultMaxEntries bounds a MemoryCache created with a non-positive size.
const DefaultMaxEntries = 1024

// Stats counts cache outcomes since creation. Expired entries count as
// misses.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// MemoryCache is a size-bounded LRU cache for a single process.
type MemoryCache struct {
	mu      sync.Mutex
	stats   Stats
	max     int
	order   *list.List // front is most recently used
	entries map[string]*list.Element
	now     func() time.Time
}

var _ Cache = (*MemoryCache)(nil)

type memoryEntry struct {
	key       string
	data      []byte
	expiresAt time.Time
}

// NewMemoryCache returns an LRU cache holding at most maxEntries entries.
func NewMemoryCache(maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryCache{
		max:     maxEntries,
		order:   list.New(),
		entries: make(map[string]*list.Element),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		return nil, false, nil
	}
	e := el.Value.(*memoryEntry)
	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		c.remove(el)
		c.stats.Misses++
		return nil, false, nil
	}
	c.order.MoveToFront(el)
	c.stats.Hits++
	return e.data, true, nil
}

// Set stores a copy of data, evicting the least recently used entry when
// the cache is full.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	e := &memoryEntry{key: key, data: append([]byte(nil), data...)}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		el.Value = e
		c.order.MoveToFront(el)
		return nil
	}
	c.entries[key] = c.order.PushFront(e)
	for c.order.Len() > c.max {
		c.remove(c.order.Back())
		c.stats.Evictions++
	}
	return nil
}

func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.remove(el)
	}
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns a snapshot of the counters.
func (c *MemoryCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *MemoryCache) Close() error { return nil }

func (c *MemoryCache) remove(el *list.Element) {
	c.order.Remove(el)
	delete(c.entries, el.Value.(*memoryEntry).key)
}
