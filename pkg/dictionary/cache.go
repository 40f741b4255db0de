package dictionary

import (
	"math"
	"slices"
	"sync"

	"github.com/bastiangx/tapeytape/pkg/steno"
	"github.com/charmbracelet/log"
)

// DefaultCacheSize is the number of reverse lookups a Cache keeps.
const DefaultCacheSize = 512

// Cache remembers recent reverse lookups of a Stack. Consecutive strokes
// search overlapping windows, so most texts are looked up again right away.
// The stack must not change while the cache is in use.
type Cache struct {
	stack       *Stack
	outlines    map[string][]steno.Outline
	accessTime  map[string]int64
	accessCount int64
	hits        int64
	maxEntries  int
	mu          sync.Mutex
}

// NewCache wraps stack. A maxEntries of zero or less uses DefaultCacheSize.
func NewCache(stack *Stack, maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheSize
	}
	return &Cache{
		stack:      stack,
		outlines:   make(map[string][]steno.Outline, maxEntries),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

// ReverseLookup answers from the cache, asking the stack on a miss.
// Errors are not cached.
func (c *Cache) ReverseLookup(text string) ([]steno.Outline, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if outlines, ok := c.outlines[text]; ok {
		c.hits++
		c.markAccessed(text)
		return slices.Clone(outlines), nil
	}

	outlines, err := c.stack.ReverseLookup(text)
	if err != nil {
		return nil, err
	}
	if len(c.outlines) >= c.maxEntries {
		c.evictLRU()
	}
	c.outlines[text] = outlines
	c.markAccessed(text)
	return slices.Clone(outlines), nil
}

// Owner is passed through to the stack.
func (c *Cache) Owner(outline steno.Outline) string {
	return c.stack.Owner(outline)
}

// Stats reports the cache fill and hit count.
func (c *Cache) Stats() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return map[string]int{
		"cachedTexts": len(c.outlines),
		"maxTexts":    c.maxEntries,
		"cacheHits":   int(c.hits),
	}
}

func (c *Cache) markAccessed(text string) {
	c.accessCount++
	c.accessTime[text] = c.accessCount
}

func (c *Cache) evictLRU() {
	var oldestText string
	var oldestTime int64 = math.MaxInt64

	for text, accessTime := range c.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestText = text
		}
	}

	delete(c.outlines, oldestText)
	delete(c.accessTime, oldestText)
	log.Debugf("Evicted '%s' from lookup cache", oldestText)
}
