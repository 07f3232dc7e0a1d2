package arr

import (
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// ProgramCache stores compiled expression programs. Keys are the expression
// prefixed with the engine name, so one cache can serve several engines.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// LRUProgramCache is a size-bounded ProgramCache that evicts the least
// recently used program. It is safe for concurrent use.
type LRUProgramCache struct {
	mu      sync.Mutex
	size    int
	entries *linkedhashmap.Map
}

// NewLRUProgramCache returns a cache holding at most size programs. A
// non-positive size defaults to 128.
func NewLRUProgramCache(size int) *LRUProgramCache {
	if size <= 0 {
		size = 128
	}
	return &LRUProgramCache{
		size:    size,
		entries: linkedhashmap.New(),
	}
}

func (c *LRUProgramCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	// re-insert to move the key to the most recent end
	c.entries.Remove(key)
	c.entries.Put(key, value)
	return value, true
}

func (c *LRUProgramCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Remove(key)
	c.entries.Put(key, value)
	for c.entries.Size() > c.size {
		oldest := c.entries.Keys()[0]
		c.entries.Remove(oldest)
	}
}

// Len returns the number of cached programs.
func (c *LRUProgramCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Size()
}
