// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

package rangesum

import (
	"github.com/luxfi/memocache/lru"
)

// Cache is the subset of cache behavior the querier needs. Both
// lru.Cache[Span, T] and lru.SizedCache[Span, T] satisfy it, as does a
// metercacher wrapper around either.
type Cache[T any] interface {
	Get(key Span) (T, bool)
	Put(key Span, value T)
	EvictIf(pred func(Span) bool) int
}

// Querier answers range-sum queries against a store through a cache of
// previously computed sums. The querier assumes exclusive write access to
// the store: writes that bypass Update leave stale sums in the cache.
type Querier[T Number] struct {
	store *Store[T]
	cache Cache[T]
}

// New creates a querier over store with a count-bounded LRU cache holding
// up to capacity spans.
func New[T Number](store *Store[T], capacity int) *Querier[T] {
	return NewWithCache[T](store, lru.NewCache[Span, T](capacity))
}

// NewWithCache creates a querier over store using the provided cache.
func NewWithCache[T Number](store *Store[T], cache Cache[T]) *Querier[T] {
	return &Querier[T]{
		store: store,
		cache: cache,
	}
}

// RangeSum returns the sum of the elements in [l, r]. A hit costs one cache
// lookup; a miss sums the span directly and caches the result.
func (q *Querier[T]) RangeSum(l, r int) (T, error) {
	span := Span{L: l, R: r}
	if value, ok := q.cache.Get(span); ok {
		return value, nil
	}

	value, err := q.store.Sum(span)
	if err != nil {
		var zero T
		return zero, err
	}
	q.cache.Put(span, value)
	return value, nil
}

// Update writes value at index and drops every cached span containing the
// index. It returns the number of cache entries invalidated. A stale sum
// covering the written index is never observable after Update returns.
func (q *Querier[T]) Update(index int, value T) (int, error) {
	if err := q.store.Set(index, value); err != nil {
		return 0, err
	}
	return q.cache.EvictIf(func(s Span) bool {
		return s.Contains(index)
	}), nil
}

// Store returns the backing store.
func (q *Querier[T]) Store() *Store[T] {
	return q.store
}
