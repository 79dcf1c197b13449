package layout

import "github.com/go-drift/boxkit/pkg/geometry"

// MeasureCache remembers the content sizes a composite measured for its
// children during the last Measure call so the following Layout can reuse
// them. It is replaced on every Measure; Layout must cope with it being
// empty by measuring fresh.
type MeasureCache struct {
	available geometry.Size
	sizes     []geometry.Size
	valid     bool
}

// Store replaces the cached sizes.
func (c *MeasureCache) Store(available geometry.Size, sizes []geometry.Size) {
	c.available = available
	c.sizes = sizes
	c.valid = true
}

// StoreOne replaces the cache with a single size.
func (c *MeasureCache) StoreOne(available, size geometry.Size) {
	c.Store(available, []geometry.Size{size})
}

// Invalidate drops the cached sizes.
func (c *MeasureCache) Invalidate() {
	c.available = geometry.Size{}
	c.sizes = nil
	c.valid = false
}

// Lookup returns the cached size for child index i.
func (c *MeasureCache) Lookup(i int) (geometry.Size, bool) {
	if !c.valid || i < 0 || i >= len(c.sizes) {
		return geometry.Size{}, false
	}
	return c.sizes[i], true
}

// Available returns the size the cache was measured against.
func (c *MeasureCache) Available() (geometry.Size, bool) {
	return c.available, c.valid
}

// ContentSize returns the cached content size of child i, measuring child
// against available when nothing is cached.
func (c *MeasureCache) ContentSize(i int, child Layoutable, available geometry.Size) geometry.Size {
	if size, ok := c.Lookup(i); ok {
		return size
	}
	return MeasureContent(child, available)
}
