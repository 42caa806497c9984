// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package memocache provides self-maintaining caches for repeated queries
// over mutable data: a bounded LRU map with predicate invalidation, and a
// splay tree that reorganizes itself around the access pattern.
//
// None of the implementations lock internally. Callers sharing a cache
// across goroutines must serialize access themselves.
package memocache

// Cacher acts as a best effort key value store.
type Cacher[K comparable, V any] interface {
	// Put inserts an element into the cache.
	Put(key K, value V)

	// Get returns the entry with the key, if it exists.
	Get(key K) (V, bool)

	// Evict removes the specified entry from the cache.
	Evict(key K)

	// EvictIf removes every entry whose key satisfies pred and returns the
	// number of entries removed. Used to drop entries made stale by a
	// mutation of the underlying data.
	EvictIf(pred func(K) bool) int

	// Flush removes all entries from the cache.
	Flush()

	// Len returns the number of elements in the cache.
	Len() int

	// PortionFilled returns fraction of cache currently filled (0 --> 1).
	PortionFilled() float64
}
