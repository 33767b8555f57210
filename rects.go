package cardtable

// RectProvider supplies the last known screen rectangle of an entity.
type RectProvider interface {
	Rect(id string) (Rect, bool)
}

// RectCache maps entity ids to their last measured rectangle. Measurements are
// pushed in with Report whenever an entity's layout changes.
type RectCache struct {
	rects map[string]Rect

	// OnUpdate, if set, is called after a reading has been accepted.
	OnUpdate func(id string, r Rect)
}

// NewRectCache returns an empty cache.
func NewRectCache() *RectCache {
	return &RectCache{rects: make(map[string]Rect)}
}

// Report records a fresh measurement for id. An all-zero reading is a
// transient invalid measurement: it is dropped, the previous rectangle is kept
// and Report returns false.
func (c *RectCache) Report(id string, r Rect) bool {
	if r.IsZero() {
		return false
	}
	r = r.normalized()
	c.rects[id] = r
	if c.OnUpdate != nil {
		c.OnUpdate(id, r)
	}
	return true
}

// Rect implements RectProvider.
func (c *RectCache) Rect(id string) (Rect, bool) {
	r, ok := c.rects[id]
	return r, ok
}

// Forget drops the rectangle of an entity that went away.
func (c *RectCache) Forget(id string) {
	delete(c.rects, id)
}

// Len returns the number of entities with a known rectangle.
func (c *RectCache) Len() int {
	return len(c.rects)
}
