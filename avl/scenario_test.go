// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

// the map built by inserting 3, 2, 1 in that order
func threeTwoOne() *avl.Map[int, int] {
	m := avl.New[int, int]()
	m.Insert(3, 3)
	m.Insert(2, 2)
	m.Insert(1, 1)
	return m
}

type pair struct {
	k int
	v int
}

func pairs(m *avl.Map[int, int]) []pair {
	p := []pair{}
	for k, v := range m.All() {
		p = append(p, pair{k, v})
	}
	return p
}

func TestInsertDescendingRotatesRight(t *testing.T) {
	m := threeTwoOne()

	s := m.Stats()
	assert.Equal(t, uint64(1), s.RotateRight, "right rotations")
	assert.Equal(t, uint64(0), s.RotateLeft, "left rotations")
	assert.Equal(t, uint64(0), s.RotateLeftRight, "left-right rotations")
	assert.Equal(t, uint64(0), s.RotateRightLeft, "right-left rotations")
	assert.Equal(t, uint64(3), s.Inserts, "inserts")

	root := m.Root()
	assert.Equal(t, 2, root.Key(), "root")
	assert.Equal(t, 1, root.Left().Key(), "left child")
	assert.Equal(t, 3, root.Right().Key(), "right child")
	assert.Nil(t, root.Parent(), "root parent")
	assert.Equal(t, root, root.Left().Parent(), "left parent")
	assert.Equal(t, root, root.Right().Parent(), "right parent")
	assert.Equal(t, 1, m.Height(), "height")

	assert.Equal(t, []pair{{1, 1}, {2, 2}, {3, 3}}, pairs(m), "iteration")
	assert.NoError(t, m.Validate(), "validate")
}

func TestDoubleRotations(t *testing.T) {
	m := avl.New[int, int]()
	m.Insert(3, 3)
	m.Insert(1, 1)
	m.Insert(2, 2)
	assert.Equal(t, uint64(1), m.Stats().RotateLeftRight, "left-right rotations")
	assert.Equal(t, uint64(1), m.Stats().Rotations(), "total rotations")
	assert.Equal(t, 2, m.Root().Key(), "root after left-right")

	m = avl.New[int, int]()
	m.Insert(1, 1)
	m.Insert(3, 3)
	m.Insert(2, 2)
	assert.Equal(t, uint64(1), m.Stats().RotateRightLeft, "right-left rotations")
	assert.Equal(t, 2, m.Root().Key(), "root after right-left")

	m.ResetStats()
	assert.Zero(t, m.Stats().Rotations(), "after reset")
	assert.NoError(t, m.Validate(), "validate")
}

func TestEraseToEmpty(t *testing.T) {
	m := threeTwoOne()

	for i, key := range []int{1, 2, 3} {
		assert.False(t, m.Empty(), "empty before erase %d", i)
		m.Erase(m.Find(key))
		assert.NoError(t, m.Validate(), "after erase of: %d", key)
		assert.Equal(t, 2-i, m.Size(), "size after erase of: %d", key)
	}
	assert.True(t, m.Empty(), "not empty")
	assert.Equal(t, 0, m.Size(), "size")
	assert.Equal(t, -1, m.Height(), "height of empty map")
	assert.Equal(t, m.End(), m.Begin(), "begin of empty map")
}

func TestAtOnEmptyMap(t *testing.T) {
	m := avl.New[string, int]()
	v, err := m.At("anything")
	assert.Nil(t, v, "value")
	assert.True(t, fault.IsErrOutOfRange(err), "error: %v", err)
	assert.Equal(t, fault.ErrKeyNotFound, err, "error")
}

func TestInsertExisting(t *testing.T) {
	m := threeTwoOne()
	before := pairs(m)

	pos, added := m.Insert(2, 200)
	assert.False(t, added, "added")
	assert.Equal(t, m.Find(2), pos, "position of existing key")
	v, err := pos.Value()
	assert.NoError(t, err, "value")
	assert.Equal(t, 2, *v, "value overwritten")
	assert.Equal(t, 3, m.Size(), "size changed")
	assert.Equal(t, before, pairs(m), "contents changed")
	assert.Equal(t, uint64(3), m.Stats().Inserts, "insert counted")
}

func TestEraseAbsent(t *testing.T) {
	m := threeTwoOne()
	before := pairs(m)

	m.Erase(m.End())
	m.Erase(m.Find(42))
	assert.False(t, m.Delete(42), "delete absent")

	assert.Equal(t, 3, m.Size(), "size changed")
	assert.Equal(t, before, pairs(m), "contents changed")
	assert.Equal(t, uint64(0), m.Stats().Erasures, "erasure counted")
}

func TestEraseForeignAndStale(t *testing.T) {
	m := threeTwoOne()
	other := threeTwoOne()

	// position from another map
	m.Erase(other.Find(2))
	assert.Equal(t, 3, m.Size(), "foreign erase changed this map")
	assert.Equal(t, 3, other.Size(), "foreign erase changed other map")

	// position already erased
	pos := m.Find(2)
	m.Erase(pos)
	assert.Equal(t, 2, m.Size(), "size after erase")
	m.Erase(pos)
	assert.Equal(t, 2, m.Size(), "stale erase changed size")
	assert.NoError(t, m.Validate(), "validate")
}

func TestIndex(t *testing.T) {
	m := threeTwoOne()

	// existing key
	v := m.Index(2)
	assert.Equal(t, 2, *v, "existing value")
	*v = 22
	assert.Equal(t, 3, m.Size(), "size changed")
	got, _ := m.Get(2)
	assert.Equal(t, 22, got, "value not updated in place")

	// absent key inserts the zero value
	v = m.Index(4)
	assert.Equal(t, 0, *v, "default value")
	assert.Equal(t, 4, m.Size(), "size after index")
	*v = 44
	at, err := m.At(4)
	assert.NoError(t, err, "at")
	assert.Equal(t, 44, *at, "value through index")
	assert.NoError(t, m.Validate(), "validate")
}

func TestIndexIsLogarithmic(t *testing.T) {
	const n = 1 << 12

	m := avl.New[int, int]()
	for i := 0; i < n; i += 1 {
		*m.Index(i) += i
	}
	assert.Equal(t, n, m.Size(), "size")
	assert.NoError(t, m.Validate(), "validate")

	// AVL height is below 1.44 log2(n+2)
	assert.True(t, m.Height() <= 17, "height: %d", m.Height())
}

func TestCountAndContains(t *testing.T) {
	m := threeTwoOne()
	for _, key := range []int{1, 2, 3} {
		assert.Equal(t, 1, m.Count(key), "count: %d", key)
		assert.True(t, m.Contains(key), "contains: %d", key)
	}
	assert.Equal(t, 0, m.Count(4), "count absent")
	assert.False(t, m.Contains(0), "contains absent")
}

func TestFindRoundTrip(t *testing.T) {
	m := avl.New[int, string]()
	for i := 0; i < 100; i += 1 {
		key := (i * 37) % 101
		m.Insert(key, "v")
		*m.Index(key) = "value"

		pos := m.Find(key)
		v, err := pos.Value()
		assert.NoError(t, err, "value of: %d", key)
		assert.Equal(t, "value", *v, "value of: %d", key)
	}
}

func TestFromPairs(t *testing.T) {
	m := avl.FromPairs(
		avl.Pair[string, int]{Key: "b", Value: 2},
		avl.Pair[string, int]{Key: "a", Value: 1},
		avl.Pair[string, int]{Key: "b", Value: 20},
		avl.Pair[string, int]{Key: "c", Value: 3},
	)
	assert.Equal(t, 3, m.Size(), "size")
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys(), "keys")
	b, _ := m.Get("b")
	assert.Equal(t, 2, b, "later duplicate replaced value")
}

func TestNewFunc(t *testing.T) {
	descending := func(a int, b int) int {
		return b - a
	}
	m := avl.NewFunc[int, string](descending)
	for _, k := range []int{5, 1, 4, 2, 3} {
		m.Insert(k, "")
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1}, m.Keys(), "custom order")
	assert.NoError(t, m.Validate(), "validate")

	assert.Panics(t, func() {
		avl.NewFunc[int, int](nil)
	}, "nil compare accepted")
}

func TestClear(t *testing.T) {
	m := threeTwoOne()
	pos := m.Find(2)
	m.Clear()
	assert.True(t, m.Empty(), "not empty")
	assert.False(t, pos.Valid(), "iterator survived clear")
	_, err := pos.Key()
	assert.Equal(t, fault.ErrInvalidIterator, err, "key of cleared node")

	m.Insert(1, 1)
	assert.Equal(t, 1, m.Size(), "reuse after clear")
}
