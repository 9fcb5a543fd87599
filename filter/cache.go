package filter

import (
	"container/list"
	"sync"
)

// lruCache is a thread-safe LRU cache of compiled filters keyed by
// their expression text.
type lruCache struct {
	size      int
	evictList *list.List
	items     map[string]*list.Element
	mu        sync.Mutex
}

type entry struct {
	key   string
	value *CompiledFilter
}

func newLRUCache(size int) *lruCache {
	return &lruCache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}
}

// Get retrieves a compiled filter and marks it most recently used.
func (c *lruCache) Get(key string) (*CompiledFilter, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, exists := c.items[key]
	if !exists {
		return nil, false
	}
	c.evictList.MoveToFront(node)
	return node.Value.(*entry).value, true
}

// Put adds or refreshes a compiled filter, evicting the least recently
// used one when full.
func (c *lruCache) Put(key string, value *CompiledFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, exists := c.items[key]; exists {
		c.evictList.MoveToFront(node)
		node.Value.(*entry).value = value
		return
	}

	node := c.evictList.PushFront(&entry{key: key, value: value})
	c.items[key] = node

	if c.evictList.Len() > c.size {
		oldest := c.evictList.Back()
		if oldest != nil {
			c.evictList.Remove(oldest)
			delete(c.items, oldest.Value.(*entry).key)
		}
	}
}

// Clear removes all items from the cache
func (c *lruCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.evictList.Init()
}

// Size returns the number of items in the cache
func (c *lruCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.evictList.Len()
}
