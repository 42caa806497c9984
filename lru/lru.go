// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package lru provides LRU cache implementations with predicate
// invalidation. The caches are not safe for concurrent use.
package lru

import (
	"container/list"

	"github.com/luxfi/memocache"
)

var _ memocache.Cacher[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// entry is a cache entry.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a count-bounded LRU cache.
type Cache[K comparable, V any] struct {
	size     int
	elements map[K]*list.Element
	order    *list.List
	onEvict  func(K, V)
}

// NewCache creates a new LRU cache with the specified size.
func NewCache[K comparable, V any](size int) *Cache[K, V] {
	return NewCacheWithOnEvict[K, V](size, nil)
}

// NewCacheWithOnEvict creates a cache that calls onEvict for every entry
// removed by capacity eviction, Evict, or EvictIf. Flush does not invoke
// the callback.
func NewCacheWithOnEvict[K comparable, V any](size int, onEvict func(K, V)) *Cache[K, V] {
	if size <= 0 {
		size = 1
	}
	return &Cache[K, V]{
		size:     size,
		elements: make(map[K]*list.Element),
		order:    list.New(),
		onEvict:  onEvict,
	}
}

// Put inserts an element into the cache and marks it most recently used.
// If the cache is full, the least recently used entry is evicted first.
func (c *Cache[K, V]) Put(key K, value V) {
	if elem, ok := c.elements[key]; ok {
		// Update existing entry
		elem.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(elem)
		return
	}

	// Evict oldest if at capacity
	if c.order.Len() >= c.size {
		oldest := c.order.Back()
		if oldest != nil {
			c.removeElement(oldest)
		}
	}

	// Add new entry
	e := &entry[K, V]{key: key, value: value}
	elem := c.order.PushFront(e)
	c.elements[key] = elem
}

// Get returns the entry with the key, if it exists, and marks it most
// recently used. A miss leaves the cache unchanged.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if elem, ok := c.elements[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Evict removes the specified entry from the cache.
func (c *Cache[K, V]) Evict(key K) {
	if elem, ok := c.elements[key]; ok {
		c.removeElement(elem)
	}
}

// EvictIf removes every entry whose key satisfies pred and returns the
// number of entries removed. The predicate is evaluated against a snapshot
// of the current keys. Cost is O(len) regardless of how many entries match.
func (c *Cache[K, V]) EvictIf(pred func(K) bool) int {
	var victims []*list.Element
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		if pred(elem.Value.(*entry[K, V]).key) {
			victims = append(victims, elem)
		}
	}
	for _, elem := range victims {
		c.removeElement(elem)
	}
	return len(victims)
}

// Flush removes all entries from the cache.
func (c *Cache[K, V]) Flush() {
	c.elements = make(map[K]*list.Element)
	c.order.Init()
}

// Len returns the number of elements in the cache.
func (c *Cache[K, V]) Len() int {
	return c.order.Len()
}

// PortionFilled returns fraction of cache currently filled.
func (c *Cache[K, V]) PortionFilled() float64 {
	return float64(c.order.Len()) / float64(c.size)
}

func (c *Cache[K, V]) removeElement(elem *list.Element) {
	e := elem.Value.(*entry[K, V])
	delete(c.elements, e.key)
	c.order.Remove(elem)
	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}
}
