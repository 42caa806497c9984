// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rangesum answers repeated inclusive range-sum queries over a
// mutable array, caching computed sums and invalidating them when a write
// lands inside a cached range. Not safe for concurrent use.
package rangesum

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrIndexOutOfBounds is returned for an index outside [0, Len).
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrInvalidSpan is returned for a span with L > R or an endpoint
	// outside the store.
	ErrInvalidSpan = errors.New("invalid span")
)

// Number is the set of element types a store can aggregate.
type Number interface {
	constraints.Integer | constraints.Float
}

// Span identifies the inclusive index interval [L, R].
type Span struct {
	L, R int
}

// Contains reports whether index i falls within the span.
func (s Span) Contains(i int) bool {
	return s.L <= i && i <= s.R
}

// Width returns the number of indices the span covers.
func (s Span) Width() int {
	return s.R - s.L + 1
}

// Store owns a mutable sequence of values. All mutation goes through Set so
// that a caching layer wrapping the store can observe every write.
type Store[T Number] struct {
	values []T
}

// NewStore creates a store holding a copy of values.
func NewStore[T Number](values []T) *Store[T] {
	return &Store[T]{values: append([]T(nil), values...)}
}

// Len returns the number of elements in the store.
func (s *Store[T]) Len() int {
	return len(s.values)
}

// At returns the element at index i.
func (s *Store[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.values) {
		var zero T
		return zero, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfBounds, i, len(s.values))
	}
	return s.values[i], nil
}

// Set writes value at index i. Writing through the store directly does not
// invalidate any cache layered on top; use Querier.Update for that.
func (s *Store[T]) Set(i int, value T) error {
	if i < 0 || i >= len(s.values) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfBounds, i, len(s.values))
	}
	s.values[i] = value
	return nil
}

// Sum computes the sum of the elements in span directly, without any
// caching. Cost is O(span.Width()).
func (s *Store[T]) Sum(span Span) (T, error) {
	var zero T
	if span.L > span.R || span.L < 0 || span.R >= len(s.values) {
		return zero, fmt.Errorf("%w: [%d, %d] (len %d)", ErrInvalidSpan, span.L, span.R, len(s.values))
	}
	sum := zero
	for _, v := range s.values[span.L : span.R+1] {
		sum += v
	}
	return sum, nil
}
