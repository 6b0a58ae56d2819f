// Package store provides the in-memory persistence substrate for the
// gallery domain.  Every entity type lives in its own Collection: an
// ordered slice guarded by an RWMutex with monotonically increasing
// uint64 identifiers.  State is process-lifetime only; a restart discards
// everything.
package store

import "sync"

// Collection is a generic ordered in-memory collection.  Items keep their
// insertion order, ids start at 1 and are never recycled.  Read accessors
// hand out copies, never the stored items, so a caller can read fields
// without holding any lock; Update is the only path that touches stored
// state.
type Collection[T any] struct {
	mu    sync.RWMutex
	seq   uint64
	items []*T
	byID  map[uint64]*T
}

// NewCollection returns an empty collection.
func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{byID: make(map[uint64]*T)}
}

// Insert allocates the next identifier, calls build with it and appends
// the resulting item.  A copy of the built item is returned.
func (c *Collection[T]) Insert(build func(id uint64) *T) *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	item := build(c.seq)
	c.items = append(c.items, item)
	c.byID[c.seq] = item
	cp := *item
	return &cp
}

// Get returns a copy of the item with the given id, or false when absent.
func (c *Collection[T]) Get(id uint64) (*T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	cp := *item
	return &cp, true
}

// Update applies fn to the item with the given id under the collection
// lock.  It returns false when the id does not exist.
func (c *Collection[T]) Update(id uint64, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.byID[id]
	if !ok {
		return false
	}
	fn(item)
	return true
}

// All returns a copy of every item in insertion order.
func (c *Collection[T]) All() []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*T, len(c.items))
	for i, item := range c.items {
		cp := *item
		out[i] = &cp
	}
	return out
}

// Find returns, in insertion order, a copy of every item matching pred.
// pred runs under the read lock and must not call back into the
// collection.
func (c *Collection[T]) Find(pred func(*T) bool) []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*T, 0)
	for _, item := range c.items {
		if pred(item) {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out
}

// First returns a copy of the first item matching pred in insertion
// order.
func (c *Collection[T]) First(pred func(*T) bool) (*T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if pred(item) {
			cp := *item
			return &cp, true
		}
	}
	return nil, false
}

// Count returns the number of items matching pred.
func (c *Collection[T]) Count(pred func(*T) bool) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, item := range c.items {
		if pred(item) {
			n++
		}
	}
	return n
}

// Len returns the total number of items.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
