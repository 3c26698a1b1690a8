package inmemory

import (
	"sync"

	"marketplace/internal/pkg/errs"
)

// collection is a concurrency-safe keyed store underlying the in-memory
// repositories. It keeps insertion order so listing is deterministic, which
// the matching policies rely on.
//
// Stored values are exposed only as shallow copies: get and getAll hand out
// copies, and mutate applies the caller's function to a copy that replaces
// the stored value only on success. Aggregates must therefore mutate by
// replacing pointer fields rather than writing through them, which all
// domain aggregates in this module do.
type collection[T any] struct {
	mu sync.RWMutex
	// items maps ID to the current value
	items map[string]*T
	// keys preserves insertion order of IDs
	keys []string
	// name is the parameter name reported in not-found/conflict errors
	name string
}

func newCollection[T any](name string) *collection[T] {
	return &collection[T]{
		items: make(map[string]*T),
		name:  name,
	}
}

// add stores a new value under id.
// Returns an ObjectAlreadyExistsError if the id is already taken.
func (c *collection[T]) add(id string, item *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; ok {
		return errs.NewObjectAlreadyExistsError(c.name, id)
	}

	cp := *item
	c.items[id] = &cp
	c.keys = append(c.keys, id)
	return nil
}

// get returns a copy of the value stored under id.
// Returns an ObjectNotFoundError if the id is unknown.
func (c *collection[T]) get(id string) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError(c.name, id)
	}

	cp := *item
	return &cp, nil
}

// getAll returns copies of all stored values in insertion order.
func (c *collection[T]) getAll() []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*T, 0, len(c.keys))
	for _, id := range c.keys {
		cp := *c.items[id]
		out = append(out, &cp)
	}
	return out
}

// mutate applies fn to the value stored under id as one atomic
// read-modify-write step. fn runs on a copy; the copy replaces the stored
// value only when fn succeeds, so a failed mutation leaves no trace.
func (c *collection[T]) mutate(id string, fn func(*T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[id]
	if !ok {
		return errs.NewObjectNotFoundError(c.name, id)
	}

	cp := *item
	if err := fn(&cp); err != nil {
		return err
	}

	c.items[id] = &cp
	return nil
}
