package render

import "sync"

// Cache size constants - proactive limits prevent GC spikes from bulk eviction
const (
	tileImageCacheMaxSize    = 256
	tileImageCacheTargetSize = 192 // Target after eviction (75% of max)
)

// TileImageKey identifies one pre-rendered tile image.
type TileImageKey struct {
	Code      uint32
	Size      int
	Highlight bool
}

// ImageCache stores pre-rendered images keyed by their appearance. Oldest entries are
// evicted first once the cache fills up.
type ImageCache[K comparable, V any] struct {
	cache      map[K]V
	mutex      sync.RWMutex
	cacheOrder []K
	maxSize    int
	targetSize int
}

func NewImageCache[K comparable, V any](maxSize, targetSize int) *ImageCache[K, V] {
	if targetSize >= maxSize {
		targetSize = maxSize * 3 / 4
	}
	return &ImageCache[K, V]{
		cache:      make(map[K]V, maxSize),
		cacheOrder: make([]K, 0, maxSize),
		maxSize:    maxSize,
		targetSize: targetSize,
	}
}

// GetOrCreate retrieves a cached value or creates and stores a new one.
func (c *ImageCache[K, V]) GetOrCreate(key K, createFunc func() V) V {
	c.mutex.RLock()
	if cached, exists := c.cache[key]; exists {
		c.mutex.RUnlock()
		return cached
	}
	c.mutex.RUnlock()

	created := createFunc()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	// Check again in case another goroutine added it while we were creating
	if cached, exists := c.cache[key]; exists {
		return cached
	}

	if len(c.cache) >= c.maxSize {
		evictCount := len(c.cacheOrder) - c.targetSize
		if evictCount > 0 && evictCount <= len(c.cacheOrder) {
			for i := 0; i < evictCount; i++ {
				delete(c.cache, c.cacheOrder[i])
			}
			c.cacheOrder = c.cacheOrder[evictCount:]
		}
	}

	c.cache[key] = created
	c.cacheOrder = append(c.cacheOrder, key)
	return created
}

func (c *ImageCache[K, V]) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.cache)
}

// Clear drops every entry, e.g. after the tile size changes.
func (c *ImageCache[K, V]) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.cache = make(map[K]V, c.maxSize)
	c.cacheOrder = c.cacheOrder[:0]
}
