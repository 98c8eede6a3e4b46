// Package datastore provides the in-memory collections backing the three
// entity stores, plus the failure kinds shared by every store and directory
// operation. Collections preserve insertion order and guard all access with
// a read-write mutex so that check-then-act write sequences never interleave.
package datastore

import (
	"errors"
	"sync"
)

var (
	// ErrNotFound is returned when a key is absent on a read-required operation.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a key is already present on create.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidInput is returned for blank required fields or negative
	// numeric fields.
	ErrInvalidInput = errors.New("invalid input")
)

// Collection is an ordered in-memory set of records with a unique natural
// key. The key function must be total and side-effect free.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	key   func(T) string
}

// NewCollection builds an empty collection keyed by keyFn.
func NewCollection[T any](keyFn func(T) string) *Collection[T] {
	return &Collection[T]{key: keyFn}
}

// Seed replaces the collection contents, keeping input order. Duplicate keys
// keep the first occurrence.
func (c *Collection[T]) Seed(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = c.items[:0]
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		k := c.key(item)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		c.items = append(c.items, item)
	}
}

// All returns a copy of the collection in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Find returns the record with the given key, or ErrNotFound.
func (c *Collection[T]) Find(key string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if c.key(item) == key {
			return item, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Exists reports whether a record with the given key is present.
func (c *Collection[T]) Exists(key string) bool {
	_, err := c.Find(key)
	return err == nil
}

// Filter returns all records matching pred, in insertion order.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []T
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Insert appends a new record. ErrAlreadyExists if the key is taken.
func (c *Collection[T]) Insert(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := c.key(item)
	for _, existing := range c.items {
		if c.key(existing) == k {
			return ErrAlreadyExists
		}
	}
	c.items = append(c.items, item)
	return nil
}

// Replace swaps the record stored under key for item, keeping its position.
// ErrNotFound if the key is absent. If item carries a different key that is
// already taken by another record, ErrAlreadyExists is returned so the
// unique-key invariant survives rekeying updates.
func (c *Collection[T]) Replace(key string, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos := -1
	newKey := c.key(item)
	for i, existing := range c.items {
		k := c.key(existing)
		if k == key {
			pos = i
		} else if k == newKey {
			return ErrAlreadyExists
		}
	}
	if pos < 0 {
		return ErrNotFound
	}
	c.items[pos] = item
	return nil
}

// Remove deletes the record stored under key. ErrNotFound if absent.
func (c *Collection[T]) Remove(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if c.key(existing) == key {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
