// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

package lru

import (
	"container/list"

	"github.com/luxfi/memocache"
)

var _ memocache.Cacher[struct{}, struct{}] = (*SizedCache[struct{}, struct{}])(nil)

// SizedCache is an LRU cache bounded by total entry cost rather than entry
// count. The cost function is evaluated over the key once at insertion; for
// interval keys a natural cost is the width of the interval, so a handful
// of wide ranges can occupy the same budget as many narrow ones.
type SizedCache[K comparable, V any] struct {
	maxCost     int
	currentCost int
	costFn      func(K) int
	items       map[K]*list.Element
	lru         *list.List
}

type sizedEntry[K comparable, V any] struct {
	key   K
	value V
	cost  int
}

// NewSizedCache creates a cost-bounded LRU cache. A nil costFn charges
// every entry a cost of 1, making the cache equivalent to a count-bounded
// one.
func NewSizedCache[K comparable, V any](maxCost int, costFn func(K) int) *SizedCache[K, V] {
	if maxCost <= 0 {
		maxCost = 1
	}
	if costFn == nil {
		costFn = func(K) int { return 1 }
	}
	return &SizedCache[K, V]{
		maxCost: maxCost,
		costFn:  costFn,
		items:   make(map[K]*list.Element),
		lru:     list.New(),
	}
}

// Put inserts or replaces a value, evicting least recently used entries
// until the new entry fits. An entry whose cost alone exceeds the budget is
// not cached at all.
func (c *SizedCache[K, V]) Put(key K, value V) {
	cost := c.costFn(key)
	if cost > c.maxCost {
		return
	}

	if elem, ok := c.items[key]; ok {
		old := elem.Value.(*sizedEntry[K, V])
		c.currentCost -= old.cost
		c.lru.Remove(elem)
		delete(c.items, key)
	}

	for c.currentCost > c.maxCost-cost {
		back := c.lru.Back()
		if back == nil {
			break
		}
		old := back.Value.(*sizedEntry[K, V])
		c.currentCost -= old.cost
		delete(c.items, old.key)
		c.lru.Remove(back)
	}

	e := &sizedEntry[K, V]{key: key, value: value, cost: cost}
	c.items[key] = c.lru.PushFront(e)
	c.currentCost += cost
}

// Get retrieves a value and marks it as most recently used.
func (c *SizedCache[K, V]) Get(key K) (V, bool) {
	if elem, ok := c.items[key]; ok {
		c.lru.MoveToFront(elem)
		return elem.Value.(*sizedEntry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Evict removes a key from the cache.
func (c *SizedCache[K, V]) Evict(key K) {
	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
	}
}

// EvictIf removes every entry whose key satisfies pred and returns the
// number of entries removed.
func (c *SizedCache[K, V]) EvictIf(pred func(K) bool) int {
	var victims []*list.Element
	for elem := c.lru.Front(); elem != nil; elem = elem.Next() {
		if pred(elem.Value.(*sizedEntry[K, V]).key) {
			victims = append(victims, elem)
		}
	}
	for _, elem := range victims {
		c.removeElement(elem)
	}
	return len(victims)
}

// Flush removes all entries.
func (c *SizedCache[K, V]) Flush() {
	c.items = make(map[K]*list.Element)
	c.lru.Init()
	c.currentCost = 0
}

// Len returns number of entries.
func (c *SizedCache[K, V]) Len() int {
	return len(c.items)
}

// PortionFilled returns the ratio of cost used to max cost.
func (c *SizedCache[K, V]) PortionFilled() float64 {
	return float64(c.currentCost) / float64(c.maxCost)
}

func (c *SizedCache[K, V]) removeElement(elem *list.Element) {
	e := elem.Value.(*sizedEntry[K, V])
	c.currentCost -= e.cost
	delete(c.items, e.key)
	c.lru.Remove(elem)
}
