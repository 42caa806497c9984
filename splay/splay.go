// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

// Package splay provides a splay tree: a binary search tree that rotates
// the most recently accessed key to the root, so hot keys stay near the
// top without any explicit balance bookkeeping. Lookups reorganize the
// tree, which makes it a natural memoization cache for skewed access
// patterns. Not safe for concurrent use.
package splay

import (
	"golang.org/x/exp/constraints"
)

type node[K constraints.Ordered, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

// Tree is a splay tree mapping keys to values. Every node owns its two
// children outright and the tree owns the root, so the structure is
// acyclic by construction. The zero value is an empty tree ready to use.
type Tree[K constraints.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// New creates an empty tree.
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// rotateRight makes x's left child the new subtree root.
func rotateRight[K constraints.Ordered, V any](x *node[K, V]) *node[K, V] {
	y := x.left
	x.left = y.right
	y.right = x
	return y
}

// rotateLeft makes x's right child the new subtree root.
func rotateLeft[K constraints.Ordered, V any](x *node[K, V]) *node[K, V] {
	y := x.right
	x.right = y.left
	y.left = x
	return y
}

// splay moves the node with the given key, or the last node on the search
// path when the key is absent, to the root of the subtree. O(depth), with
// one zig-zig or zig-zag step per two levels.
func splay[K constraints.Ordered, V any](root *node[K, V], key K) *node[K, V] {
	if root == nil || root.key == key {
		return root
	}

	if key < root.key {
		if root.left == nil {
			return root
		}
		if key < root.left.key {
			// Zig-Zig
			root.left.left = splay(root.left.left, key)
			root = rotateRight(root)
		} else if key > root.left.key {
			// Zig-Zag
			root.left.right = splay(root.left.right, key)
			if root.left.right != nil {
				root.left = rotateLeft(root.left)
			}
		}
		if root.left == nil {
			return root
		}
		return rotateRight(root)
	}

	if root.right == nil {
		return root
	}
	if key > root.right.key {
		// Zig-Zig
		root.right.right = splay(root.right.right, key)
		root = rotateLeft(root)
	} else if key < root.right.key {
		// Zig-Zag
		root.right.left = splay(root.right.left, key)
		if root.right.left != nil {
			root.right = rotateRight(root.right)
		}
	}
	if root.right == nil {
		return root
	}
	return rotateLeft(root)
}

// Get returns the value stored under key, if present. Get splays the tree
// toward key whether or not it is found: after a hit the root holds key,
// and after a miss the root holds the last key on the search path. The
// reorganization on miss is what makes later nearby lookups cheap.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	t.root = splay(t.root, key)
	if t.root != nil && t.root.key == key {
		return t.root.value, true
	}
	var zero V
	return zero, false
}

// Put inserts key with value, overwriting the value if key is already
// present. The tree is splayed toward key first; on a fresh insert the
// splayed root is split into the new node's children, so the new node
// becomes the root in a single pointer swap.
func (t *Tree[K, V]) Put(key K, value V) {
	if t.root == nil {
		t.root = &node[K, V]{key: key, value: value}
		t.size = 1
		return
	}

	t.root = splay(t.root, key)
	if t.root.key == key {
		t.root.value = value
		return
	}

	n := &node[K, V]{key: key, value: value}
	if key < t.root.key {
		n.right = t.root
		n.left = t.root.left
		t.root.left = nil
	} else {
		n.left = t.root
		n.right = t.root.right
		t.root.right = nil
	}
	t.root = n
	t.size++
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Root returns the key at the root, which is the most recently accessed
// key (or, after a miss, its closest neighbor on the search path).
func (t *Tree[K, V]) Root() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return t.root.key, true
}

// Ascend calls fn for every key/value pair in ascending key order until fn
// returns false. Ascend does not splay.
func (t *Tree[K, V]) Ascend(fn func(key K, value V) bool) {
	// Iterative in-order walk; the tree can be spine-shaped, so recursion
	// depth would otherwise match the key count.
	var stack []*node[K, V]
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur.key, cur.value) {
			return
		}
		cur = cur.right
	}
}
