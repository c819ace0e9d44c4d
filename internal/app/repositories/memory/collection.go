// Package memory implements the repository contract on an in-process,
// mutex-guarded store. It backs unit tests and any deployment that does not
// want PostgreSQL; the semantics (snapshot reads, high-water-mark ids,
// shallow-merge updates, at-most-one attendance record per student and day)
// match the postgres backend.
package memory

import "sync"

// collection is an insertion-ordered record store generic over the entity
// type. All access goes through one mutex, so a lookup-then-write sequence
// such as the attendance upsert is atomic to callers.
type collection[T any] struct {
	mu     sync.RWMutex
	items  []T
	nextID int64

	id     func(T) int64
	withID func(T, int64) T
	clone  func(T) T
}

func newCollection[T any](id func(T) int64, withID func(T, int64) T, clone func(T) T) *collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &collection[T]{
		nextID: 1,
		id:     id,
		withID: withID,
		clone:  clone,
	}
}

// getAll returns a defensive copy of every record in insertion order.
func (c *collection[T]) getAll() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	for i := range c.items {
		out[i] = c.clone(c.items[i])
	}
	return out
}

// filter returns copies of the records matching the predicate, in insertion
// order.
func (c *collection[T]) filter(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []T
	for i := range c.items {
		if match(c.items[i]) {
			out = append(out, c.clone(c.items[i]))
		}
	}
	return out
}

func (c *collection[T]) getByID(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.items {
		if c.id(c.items[i]) == id {
			return c.clone(c.items[i]), true
		}
	}
	var zero T
	return zero, false
}

// create stores the record under the next id. Ids start at 1 and only ever
// grow; deleting the highest record does not hand its id back out.
func (c *collection[T]) create(rec T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec = c.withID(c.clone(rec), c.nextID)
	c.nextID++
	c.items = append(c.items, rec)
	return c.clone(rec)
}

// createUnique stores the record like create unless an existing record
// matches the natural key, in which case nothing is written.
func (c *collection[T]) createUnique(match func(T) bool, rec T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if match(c.items[i]) {
			var zero T
			return zero, false
		}
	}

	rec = c.withID(c.clone(rec), c.nextID)
	c.nextID++
	c.items = append(c.items, rec)
	return c.clone(rec), true
}

// update applies fn to the stored record with the given id.
func (c *collection[T]) update(id int64, fn func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = c.withID(fn(c.clone(c.items[i])), id)
			return c.clone(c.items[i]), true
		}
	}
	var zero T
	return zero, false
}

// delete removes and returns the record with the given id.
func (c *collection[T]) delete(id int64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.id(c.items[i]) == id {
			removed := c.items[i]
			c.items = append(c.items[:i], c.items[i+1:]...)
			return removed, true
		}
	}
	var zero T
	return zero, false
}

// upsert replaces the first record matching the natural key in place
// (keeping its id), or creates rec when none matches. Lookup and write
// happen under one lock, so concurrent upserts for the same key cannot both
// create.
func (c *collection[T]) upsert(match func(T) bool, apply func(T) T, rec T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if match(c.items[i]) {
			id := c.id(c.items[i])
			c.items[i] = c.withID(apply(c.clone(c.items[i])), id)
			return c.clone(c.items[i])
		}
	}

	rec = c.withID(c.clone(rec), c.nextID)
	c.nextID++
	c.items = append(c.items, rec)
	return c.clone(rec)
}
