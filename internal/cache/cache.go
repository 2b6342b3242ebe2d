// internal/cache/cache.go
//
// Bounded TTL cache.
//
// A small LRU keyed by string with a per-entry expiry, used to memoise
// redirect-lookup results per request path.  Entries past their TTL are
// treated as absent and dropped on access; LRU pressure evicts the
// oldest entry once capacity is reached.  Safe for concurrent use.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// TTL is a bounded least-recently-used cache with per-entry expiry.
// Zero value is unusable; construct with New.
type TTL struct {
	mu   sync.Mutex
	cap  int
	ttl  time.Duration
	ll   *list.List
	dict map[string]*list.Element
}

type entry struct {
	key string
	val any
	exp time.Time
}

// New returns a TTL cache with the given capacity and entry lifetime.
// Panics on cap < 1 or ttl <= 0.
func New(capacity int, ttl time.Duration) *TTL {
	if capacity < 1 {
		panic("cache: capacity must be ≥1")
	}
	if ttl <= 0 {
		panic("cache: ttl must be positive")
	}
	return &TTL{
		cap:  capacity,
		ttl:  ttl,
		ll:   list.New(),
		dict: make(map[string]*list.Element, capacity),
	}
}

// Get retrieves a live value and marks it MRU.  Expired entries are
// removed and reported as absent.
func (c *TTL) Get(key string) (val any, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, hit := c.dict[key]
	if !hit {
		return nil, false
	}
	ent := ele.Value.(*entry)
	if time.Now().After(ent.exp) {
		c.ll.Remove(ele)
		delete(c.dict, key)
		return nil, false
	}
	c.ll.MoveToFront(ele)
	return ent.val, true
}

// Add inserts or refreshes a value, resetting its expiry.
func (c *TTL) Add(key string, val any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	exp := time.Now().Add(c.ttl)
	if ele, hit := c.dict[key]; hit {
		ent := ele.Value.(*entry)
		ent.val = val
		ent.exp = exp
		c.ll.MoveToFront(ele)
		return
	}
	ele := c.ll.PushFront(&entry{key: key, val: val, exp: exp})
	c.dict[key] = ele
	if c.ll.Len() > c.cap {
		last := c.ll.Back()
		c.ll.Remove(last)
		delete(c.dict, last.Value.(*entry).key)
	}
}

// Len reports the current number of entries, expired or not.
func (c *TTL) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
