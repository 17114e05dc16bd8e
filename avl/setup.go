// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Map - type to hold the root node of a tree
type Map[K, V any] struct {
	root    *Node[K, V]
	size    int
	compare func(a, b K) int
	stats   statistics
}

// Pair - a key and value for bulk construction
type Pair[K, V any] struct {
	Key   K
	Value V
}

// New - create an initially empty map ordered by the natural order of
// the key type
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc - create an initially empty map ordered by a comparison
// function returning <0, 0 or >0
func NewFunc[K, V any](compare func(a, b K) int) *Map[K, V] {
	if nil == compare {
		panic("avl: nil compare function")
	}
	return &Map[K, V]{
		root:    nil,
		size:    0,
		compare: compare,
	}
}

// FromPairs - create a map from an ordered list of pairs, a later
// duplicate key does not replace the earlier value
func FromPairs[K cmp.Ordered, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := New[K, V]()
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}
	return m
}

// Empty - true if map contains no data
func (m *Map[K, V]) Empty() bool {
	return nil == m.root
}

// Size - number of nodes currently in the map
func (m *Map[K, V]) Size() int {
	return m.size
}

// Height - height of the tree, -1 when empty
func (m *Map[K, V]) Height() int {
	return height(m.root)
}

// Root - return the root node of the tree
func (m *Map[K, V]) Root() *Node[K, V] {
	return m.root
}

// Clear - erase all nodes, any outstanding iterators become invalid
func (m *Map[K, V]) Clear() {
	destroy(m.root)
	m.root = nil
	m.size = 0
}

// mark a whole subtree as erased
func destroy[K, V any](p *Node[K, V]) {
	if nil == p {
		return
	}
	destroy(p.left)
	destroy(p.right)
	p.kill()
}
