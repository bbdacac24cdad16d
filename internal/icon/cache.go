package icon

import (
	"image"
	"sync"
	"time"
)

// cacheEntry holds an extraction result with its timestamp.
// Failures are cached too so missing icons are not probed on every expand.
type cacheEntry struct {
	img       image.Image
	err       error
	timestamp time.Time
}

// cache provides a TTL-based cache of extraction results keyed by path.
type cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func newCache(ttl time.Duration) *cache {
	return &cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// get returns the cached result for key if within TTL, otherwise calls load.
func (c *cache) get(key string, load func() (image.Image, error)) (image.Image, error) {
	if c.ttl == 0 {
		return load()
	}

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && c.now().Sub(entry.timestamp) < c.ttl {
		c.mu.Unlock()
		return entry.img, entry.err
	}
	c.mu.Unlock()

	img, err := load()

	c.mu.Lock()
	c.entries[key] = cacheEntry{img: img, err: err, timestamp: c.now()}
	c.mu.Unlock()

	return img, err
}

// invalidateAll clears the entire cache.
func (c *cache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
