package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/suryansh-23/redactkit/internal/redact"
)

const defaultMaxEntries = 64

type entry struct {
	key       redact.CacheKey
	result    redact.Result
	expiresAt time.Time
}

// Cache stores redaction results in-memory with TTL and LRU eviction.
// It implements redact.ResultCache.
type Cache struct {
	mu         sync.Mutex
	lru        *list.List
	byKey      map[redact.CacheKey]*list.Element
	maxEntries int
	ttl        time.Duration
	now        func() time.Time
}

// New creates a new cache with bounds. A zero ttl disables caching.
func New(maxEntries int, ttl time.Duration) *Cache {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &Cache{
		lru:        list.New(),
		byKey:      make(map[redact.CacheKey]*list.Element),
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Put stores a result if caching is enabled.
func (c *Cache) Put(key redact.CacheKey, result redact.Result) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ttl <= 0 {
		return
	}
	if elem, ok := c.byKey[key]; ok {
		c.lru.Remove(elem)
	}
	elem := c.lru.PushFront(entry{key: key, result: result, expiresAt: c.now().Add(c.ttl)})
	c.byKey[key] = elem
	c.evictLocked()
}

// Get returns the result stored under key.
func (c *Cache) Get(key redact.CacheKey) (redact.Result, bool) {
	if c == nil {
		return redact.Result{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.byKey[key]
	if !ok {
		return redact.Result{}, false
	}
	e := elem.Value.(entry)
	if c.now().After(e.expiresAt) {
		c.lru.Remove(elem)
		delete(c.byKey, key)
		return redact.Result{}, false
	}
	c.lru.MoveToFront(elem)
	return e.result, true
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evictExpiredLocked()
	return c.lru.Len()
}

// Purge drops every entry.
func (c *Cache) Purge() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Init()
	clear(c.byKey)
}

// SetTTL updates the TTL for future entries.
func (c *Cache) SetTTL(ttl time.Duration) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttl = ttl
}

// SetMaxEntries updates the max entries and evicts if needed.
func (c *Cache) SetMaxEntries(maxEntries int) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	c.maxEntries = maxEntries
	c.evictLocked()
}

func (c *Cache) evictLocked() {
	c.evictExpiredLocked()
	for c.lru.Len() > c.maxEntries {
		back := c.lru.Back()
		if back == nil {
			return
		}
		delete(c.byKey, back.Value.(entry).key)
		c.lru.Remove(back)
	}
}

func (c *Cache) evictExpiredLocked() {
	now := c.now()
	for elem := c.lru.Back(); elem != nil; {
		prev := elem.Prev()
		e := elem.Value.(entry)
		if now.After(e.expiresAt) {
			delete(c.byKey, e.key)
			c.lru.Remove(elem)
		}
		elem = prev
	}
}
