package encoder

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/goliatone/go-qrgen/pkg/model"
)

// Cache memoises another Encoder by payload and render config. Entries are
// never evicted; the key space is bounded by what users type in one process.
type Cache struct {
	next Encoder

	mu      sync.RWMutex
	entries map[string]Image
	hits    int
	misses  int
}

// NewCache wraps next.
func NewCache(next Encoder) *Cache {
	return &Cache{
		next:    next,
		entries: make(map[string]Image),
	}
}

// Encode returns the cached image for (payload, cfg) or delegates and stores
// a successful result. Failures are not cached.
func (c *Cache) Encode(ctx context.Context, payload string, cfg model.RenderConfig) (Image, error) {
	key := cacheKey(payload, cfg)

	c.mu.RLock()
	img, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return copyImage(img), nil
	}

	img, err := c.next.Encode(ctx, payload, cfg)
	if err != nil {
		return Image{}, err
	}

	c.mu.Lock()
	c.misses++
	c.entries[key] = copyImage(img)
	c.mu.Unlock()
	return img, nil
}

// Len reports the number of cached images.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats reports cache hits and misses since creation.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

func cacheKey(payload string, cfg model.RenderConfig) string {
	h := sha256.New()
	h.Write([]byte(payload))
	h.Write([]byte{0})
	h.Write([]byte(cfg.Key()))
	return hex.EncodeToString(h.Sum(nil))
}

func copyImage(img Image) Image {
	out := img
	out.PNG = append([]byte(nil), img.PNG...)
	out.SVG = append([]byte(nil), img.SVG...)
	return out
}
