package memo

import (
	"container/list"
	"context"
	"sync"
	"time"
)

type ttlEntry struct {
	key       string
	verdict   Verdict
	expiresAt time.Time
}

// TTLCache is a thread-safe in-memory cache with per-entry expiry and LRU
// eviction at capacity. Expired entries are dropped lazily on access.
type TTLCache struct {
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
	now      func() time.Time // stubbed in tests
}

// NewTTLCache creates a cache holding at most capacity entries. The capacity
// must be positive, otherwise it panics.
func NewTTLCache(capacity int) *TTLCache {
	if capacity <= 0 {
		panic("memo: TTL cache capacity must be positive")
	}
	return &TTLCache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		now:      time.Now,
	}
}

// Get returns the verdict stored under key, dropping it when expired.
func (c *TTLCache) Get(_ context.Context, key string) (Verdict, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return Verdict{}, false, nil
	}
	entry := elem.Value.(*ttlEntry)
	if c.now().After(entry.expiresAt) {
		c.removeElement(elem)
		return Verdict{}, false, nil
	}
	c.eviction.MoveToFront(elem)
	return entry.verdict, true, nil
}

// Set stores a verdict under key for ttl, evicting the least recently used
// entry when at capacity. A non-positive ttl stores nothing.
func (c *TTLCache) Set(_ context.Context, key string, verdict Verdict, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(ttl)
	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		entry := elem.Value.(*ttlEntry)
		entry.verdict = verdict
		entry.expiresAt = expiresAt
		return nil
	}

	elem := c.eviction.PushFront(&ttlEntry{key: key, verdict: verdict, expiresAt: expiresAt})
	c.items[key] = elem
	if c.eviction.Len() > c.capacity {
		if oldest := c.eviction.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
	return nil
}

// Len returns the number of stored entries, counting any not yet reaped
// expired ones.
func (c *TTLCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Must be called with lock held.
func (c *TTLCache) removeElement(elem *list.Element) {
	c.eviction.Remove(elem)
	delete(c.items, elem.Value.(*ttlEntry).key)
}
