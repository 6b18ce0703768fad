package category

import (
	"sort"
	"strings"
	"sync"

	"github.com/liwesley02/order-up/internal/model"
)

// DefaultCacheSize bounds the classification cache.
const DefaultCacheSize = 500

// Cache memoizes classification results keyed by
// (name, size, modifier signature). It is bounded; the oldest entry is
// evicted once the bound is reached.
type Cache struct {
	entries    map[string]model.CategoryInfo
	order      []string
	maxEntries int
	mu         sync.RWMutex
}

// NewCache creates a cache bounded to maxEntries. Non-positive bounds
// fall back to DefaultCacheSize.
func NewCache(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheSize
	}
	return &Cache{
		entries:    make(map[string]model.CategoryInfo, maxEntries),
		maxEntries: maxEntries,
	}
}

// Key builds the cache key for a classification input. The modifier list
// is sorted so the signature is order-insensitive.
func Key(name, size string, modifiers []string) string {
	signature := make([]string, 0, len(modifiers))
	for _, modifier := range modifiers {
		if m := strings.ToLower(strings.TrimSpace(modifier)); m != "" {
			signature = append(signature, m)
		}
	}
	sort.Strings(signature)

	parts := []string{strings.ToLower(strings.TrimSpace(name)), strings.ToLower(strings.TrimSpace(size))}
	parts = append(parts, signature...)
	return strings.Join(parts, "||")
}

// Get returns a cached classification if present.
func (c *Cache) Get(key string) (model.CategoryInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	info, ok := c.entries[key]
	if !ok {
		return model.CategoryInfo{}, false
	}
	return info.Clone(), true
}

// Put stores a classification, evicting the oldest entry when full.
func (c *Cache) Put(key string, info model.CategoryInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = info.Clone()
		return
	}

	if len(c.entries) >= c.maxEntries && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = info.Clone()
	c.order = append(c.order, key)
}

// Len returns the number of cached classifications.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
