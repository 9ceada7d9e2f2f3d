// Package cache keeps parsed JSH expressions keyed by their source text.
//
// Sources sent to a long-running shell repeat a lot; the evaluator consults
// the cache before parsing when caching is enabled.
//
// # Example
//
//	c := cache.New(1024)
//	expr, err := c.GetOrCompile(`(get root.a)`, compile)
package cache

import (
	"container/list"
	"sync"

	"github.com/sandrolain/gojsh/pkg/types"
)

// DefaultCapacity is used when New gets a non-positive capacity.
const DefaultCapacity = 256

type entry struct {
	source string
	expr   *types.Expression
}

// Stats reports cache activity since creation or the last Clear.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Entries   int
}

// Cache is an LRU cache of parsed expressions. It is safe for concurrent
// use.
type Cache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front is most recently used
	bySource map[string]*list.Element
	stats    Stats
}

// New creates a cache holding at most capacity expressions.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		order:    list.New(),
		bySource: make(map[string]*list.Element, capacity),
	}
}

// Get returns the expression parsed from source, marking it recently used.
func (c *Cache) Get(source string) (*types.Expression, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.bySource[source]
	if !ok {
		c.stats.Misses++
		return nil, false
	}
	c.stats.Hits++
	c.order.MoveToFront(el)
	return el.Value.(*entry).expr, true
}

// Set stores expr under source, evicting the least recently used entry
// when the cache is full.
func (c *Cache) Set(source string, expr *types.Expression) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.bySource[source]; ok {
		el.Value.(*entry).expr = expr
		c.order.MoveToFront(el)
		return
	}
	if c.order.Len() >= c.capacity {
		if last := c.order.Back(); last != nil {
			c.order.Remove(last)
			delete(c.bySource, last.Value.(*entry).source)
			c.stats.Evictions++
		}
	}
	c.bySource[source] = c.order.PushFront(&entry{source: source, expr: expr})
}

// GetOrCompile returns the cached expression for source or calls compile
// and caches its result. Errors are not cached.
func (c *Cache) GetOrCompile(source string, compile func() (*types.Expression, error)) (*types.Expression, error) {
	if expr, ok := c.Get(source); ok {
		return expr, nil
	}
	expr, err := compile()
	if err != nil {
		return nil, err
	}
	c.Set(source, expr)
	return expr, nil
}

// Len returns the number of cached expressions.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Capacity returns the maximum number of cached expressions.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Entries = c.order.Len()
	return s
}

// Invalidate drops the entry for source.
func (c *Cache) Invalidate(source string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.bySource[source]; ok {
		c.order.Remove(el)
		delete(c.bySource, source)
	}
}

// Clear drops every entry and resets the counters.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.bySource = make(map[string]*list.Element, c.capacity)
	c.stats = Stats{}
}
