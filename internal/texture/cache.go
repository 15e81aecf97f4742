package texture

import (
	"fmt"
	"sync"

	"autostereogram/internal/raster"
)

// Resolver resolves an asset name to a decoded buffer.
// Returned buffers are shared and must be treated as read-only.
type Resolver interface {
	Resolve(name string, channels int) (*raster.Buffer, error)
}

// Cache is a concurrency-safe decode cache.
type Cache struct {
	mu    sync.RWMutex
	items map[cacheKey]*cacheEntry
	index *Index
}

type cacheKey struct {
	path     string
	channels int
}

type cacheEntry struct {
	buf *raster.Buffer
	err error
}

// NewCache creates a new cache backed by the given index.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[cacheKey]*cacheEntry),
		index: index,
	}
}

// Resolve loads and caches an asset. Decode failures are cached too.
func (c *Cache) Resolve(name string, channels int) (*raster.Buffer, error) {
	path, ok := c.index.ResolvePath(name)
	if !ok {
		return nil, fmt.Errorf("texture: %s not found", name)
	}
	key := cacheKey{path: path, channels: channels}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[key]; exists {
		c.mu.RUnlock()
		return entry.buf, entry.err
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	buf, err := Load(path, channels)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[key]; exists {
		return entry.buf, entry.err
	}
	c.items[key] = &cacheEntry{buf: buf, err: err}
	return buf, err
}
