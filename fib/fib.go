// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fib computes Fibonacci numbers, memoizing intermediate results
// in a splay tree. The recurrence probes n-1 and n-2 for every n, a skewed
// pattern the splay tree's move-to-root behavior serves well: the keys a
// subproblem is about to ask for were just accessed and sit at or near the
// root.
package fib

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/luxfi/memocache/splay"
)

// ErrNegative is returned when n is negative.
var ErrNegative = errors.New("n must be non-negative")

// Tree is the memoization cache Evaluate fills. A fresh tree starts every
// computation from scratch; reusing one across calls shares the work.
type Tree = splay.Tree[int, *big.Int]

// NewTree creates an empty memoization cache.
func NewTree() *Tree {
	return splay.New[int, *big.Int]()
}

// Evaluate returns the nth Fibonacci number, consulting tree before
// computing and recording every result it computes. Each key is computed
// at most once per tree. The returned value is shared with the cache and
// must be treated as read-only.
//
// Pending subproblems are kept on an explicit worklist, so evaluating a
// large n cannot overflow the call stack even against a cold cache.
func Evaluate(n int, tree *Tree) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegative, n)
	}
	if v, ok := tree.Get(n); ok {
		return v, nil
	}

	work := []int{n}
	for len(work) > 0 {
		m := work[len(work)-1]

		// A subproblem can be enqueued by both of its dependents; skip it
		// once solved.
		if _, ok := tree.Get(m); ok {
			work = work[:len(work)-1]
			continue
		}

		if m < 2 {
			tree.Put(m, big.NewInt(int64(m)))
			work = work[:len(work)-1]
			continue
		}

		// The lookups double as splays, keeping the subproblem's operands
		// near the root for the next iteration.
		a, okA := tree.Get(m - 1)
		b, okB := tree.Get(m - 2)
		if okA && okB {
			tree.Put(m, new(big.Int).Add(a, b))
			work = work[:len(work)-1]
			continue
		}
		if !okA {
			work = append(work, m-1)
		}
		if !okB {
			work = append(work, m-2)
		}
	}

	v, _ := tree.Get(n)
	return v, nil
}
