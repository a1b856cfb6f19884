// ABOUTME: Fixed-size LRU cache for non-ASCII width measurements
// ABOUTME: container/list keeps recency order; RWMutex guards concurrent readers

package width

import (
	"container/list"
	"sync"
)

type entry struct {
	key   string
	value int
}

// cache maps strings to measured widths, evicting the least recently
// used entry once full.
type cache struct {
	mu    sync.RWMutex
	items map[string]*list.Element
	order *list.List
	size  int
}

func newCache(size int) *cache {
	return &cache{
		items: make(map[string]*list.Element, size),
		order: list.New(),
		size:  size,
	}
}

func (c *cache) get(key string) (int, bool) {
	c.mu.RLock()
	elem, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return 0, false
	}
	c.mu.Lock()
	c.order.MoveToFront(elem)
	c.mu.Unlock()
	return elem.Value.(entry).value, true
}

func (c *cache) put(key string, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; ok {
		return
	}
	if c.order.Len() >= c.size {
		if oldest := c.order.Back(); oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(entry).key)
		}
	}
	c.items[key] = c.order.PushFront(entry{key: key, value: value})
}
