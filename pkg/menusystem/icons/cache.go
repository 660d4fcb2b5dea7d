// Package icons rasterizes SVG icon files into fixed-size images for
// renderers that draw pixels rather than glyphs.
package icons

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const defaultMaxCacheSize = 16

// Cache loads icons by the name a component's Icon field carries,
// resolving "<dir>/<name>.svg" and rasterizing at a fixed pixel size. The
// most recently used results are kept, bounding memory on constrained
// targets.
type Cache struct {
	dir     string
	size    int
	images  map[string]*image.RGBA
	order   []string // tracks use order for LRU eviction
	maxSize int
}

// NewCache creates a cache rasterizing icons from dir at size x size
// pixels, holding up to the default number of images.
func NewCache(dir string, size int) *Cache {
	return NewCacheWithSize(dir, size, defaultMaxCacheSize)
}

// NewCacheWithSize creates a cache holding at most maxSize images.
func NewCacheWithSize(dir string, size, maxSize int) *Cache {
	return &Cache{
		dir:     dir,
		size:    size,
		images:  make(map[string]*image.RGBA),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

// Load returns the rasterized icon for name, rendering and caching it on a
// miss.
func (c *Cache) Load(name string) (*image.RGBA, error) {
	if img, exists := c.images[name]; exists {
		// Move to end (most recently used)
		c.moveToEnd(name)
		return img, nil
	}

	img, err := c.rasterize(name)
	if err != nil {
		return nil, err
	}
	c.set(name, img)
	return img, nil
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	return len(c.images)
}

// Purge drops every cached image.
func (c *Cache) Purge() {
	c.images = make(map[string]*image.RGBA)
	c.order = c.order[:0]
}

func (c *Cache) rasterize(name string) (*image.RGBA, error) {
	path := filepath.Join(c.dir, name+".svg")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("icons: open %s: %w", path, err)
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f)
	if err != nil {
		return nil, fmt.Errorf("icons: parse %s: %w", path, err)
	}

	icon.SetTarget(0, 0, float64(c.size), float64(c.size))
	img := image.NewRGBA(image.Rect(0, 0, c.size, c.size))
	scanner := rasterx.NewScannerGV(c.size, c.size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(c.size, c.size, scanner), 1)

	return img, nil
}

func (c *Cache) set(name string, img *image.RGBA) {
	// If key already exists, just update and move to end
	if _, exists := c.images[name]; exists {
		c.images[name] = img
		c.moveToEnd(name)
		return
	}

	// Evict oldest if at capacity
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.images[name] = img
	c.order = append(c.order, name)
}

func (c *Cache) moveToEnd(name string) {
	for i, k := range c.order {
		if k == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, name)
			return
		}
	}
}

func (c *Cache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.images, oldest)
}
