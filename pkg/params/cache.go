package params

import "github.com/goliatone/go-decor/pkg/slot"

// KeyCache memoises AttributeKeys per slot. It belongs to a single render pass
// and is not safe for concurrent use.
type KeyCache struct {
	keys  [slot.Count][]string
	built [slot.Count]bool
}

// NewKeyCache returns an empty cache.
func NewKeyCache() *KeyCache {
	return &KeyCache{}
}

// Keys returns the wildcard keys for s, scanning template on first use.
func (c *KeyCache) Keys(s slot.Slot, template Node) []string {
	if !s.Valid() {
		return nil
	}
	if !c.built[s] {
		c.keys[s] = AttributeKeys(template)
		c.built[s] = true
	}
	return c.keys[s]
}

// Cached reports whether s has been scanned.
func (c *KeyCache) Cached(s slot.Slot) bool {
	return s.Valid() && c.built[s]
}
