// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

package splay

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireOrdered walks the tree in order and asserts strictly increasing
// keys, i.e. BST validity and no duplicates.
func requireOrdered(t *testing.T, tree *Tree[int, string]) {
	t.Helper()

	keys := make([]int, 0, tree.Len())
	tree.Ascend(func(k int, _ string) bool {
		keys = append(keys, k)
		return true
	})
	require.Len(t, keys, tree.Len())
	for i := 1; i < len(keys); i++ {
		require.Less(t, keys[i-1], keys[i])
	}
}

func TestEmptyTree(t *testing.T) {
	require := require.New(t)

	tree := New[int, string]()
	require.Equal(0, tree.Len())

	_, ok := tree.Get(1)
	require.False(ok)
	_, ok = tree.Root()
	require.False(ok)

	calls := 0
	tree.Ascend(func(int, string) bool { calls++; return true })
	require.Zero(calls)
}

func TestGetSplaysToRoot(t *testing.T) {
	require := require.New(t)

	tree := New[int, string]()
	for _, k := range []int{5, 2, 8, 1, 3, 7, 9} {
		tree.Put(k, "")
	}

	for _, k := range []int{1, 9, 5, 3, 3} {
		_, ok := tree.Get(k)
		require.True(ok)

		root, ok := tree.Root()
		require.True(ok)
		require.Equal(k, root)
	}
}

func TestGetMissReorganizes(t *testing.T) {
	require := require.New(t)

	tree := New[int, string]()
	for _, k := range []int{10, 20, 30, 40} {
		tree.Put(k, "")
	}

	// A miss still splays: the root becomes a neighbor of the probed key,
	// and the tree stays a valid BST.
	_, ok := tree.Get(25)
	require.False(ok)

	root, ok := tree.Root()
	require.True(ok)
	require.Contains([]int{20, 30}, root)
	requireOrdered(t, tree)
	require.Equal(4, tree.Len())
}

func TestPutOverwrite(t *testing.T) {
	require := require.New(t)

	tree := New[int, string]()
	tree.Put(1, "one")
	tree.Put(2, "two")
	tree.Put(1, "uno")

	require.Equal(2, tree.Len())
	val, ok := tree.Get(1)
	require.True(ok)
	require.Equal("uno", val)
}

func TestPutSplitsWithoutLoss(t *testing.T) {
	require := require.New(t)

	tree := New[int, string]()
	keys := []int{50, 25, 75, 10, 30, 60, 90, 5, 15, 27, 35}
	for _, k := range keys {
		tree.Put(k, "v")
	}
	require.Equal(len(keys), tree.Len())

	// Inserting between existing keys splits the splayed root; every
	// previous key must still be reachable.
	tree.Put(28, "v")
	require.Equal(len(keys)+1, tree.Len())
	requireOrdered(t, tree)

	for _, k := range append(keys, 28) {
		_, ok := tree.Get(k)
		require.True(ok, "key %d lost", k)
	}
}

func TestGetIdempotent(t *testing.T) {
	require := require.New(t)

	tree := New[int, string]()
	tree.Put(1, "one")
	tree.Put(2, "two")

	first, ok := tree.Get(2)
	require.True(ok)
	second, ok := tree.Get(2)
	require.True(ok)
	require.Equal(first, second)
}

func TestAscendEarlyStop(t *testing.T) {
	require := require.New(t)

	tree := New[int, string]()
	for i := 0; i < 10; i++ {
		tree.Put(i, "")
	}

	var seen []int
	tree.Ascend(func(k int, _ string) bool {
		seen = append(seen, k)
		return k < 4
	})
	require.Equal([]int{0, 1, 2, 3, 4}, seen)
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	tree := New[int, string]()
	inserted := make(map[int]bool)

	for i := 0; i < 5000; i++ {
		k := rng.Intn(500)
		if rng.Intn(2) == 0 {
			tree.Put(k, "v")
			inserted[k] = true
		} else {
			_, ok := tree.Get(k)
			require.Equal(t, inserted[k], ok, "key %d at step %d", k, i)
		}
	}

	require.Equal(t, len(inserted), tree.Len())
	requireOrdered(t, tree)
}

func TestAscendingInsertThenSearch(t *testing.T) {
	require := require.New(t)

	// Monotone insertion produces a spine; searches must still terminate
	// and rebalance access toward the searched keys.
	tree := New[int, int]()
	const n = 2000
	for i := 0; i < n; i++ {
		tree.Put(i, i)
	}
	require.Equal(n, tree.Len())

	for _, k := range []int{0, n / 2, n - 1, 1} {
		v, ok := tree.Get(k)
		require.True(ok)
		require.Equal(k, v)

		root, ok := tree.Root()
		require.True(ok)
		require.Equal(k, root)
	}
}
