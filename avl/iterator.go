// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/avlmap/fault"
)

// Iterator - a position in a map, a nil node is the end position
//
// iterators are small values and compare equal with == when they
// denote the same position of the same map
type Iterator[K, V any] struct {
	tree *Map[K, V]
	node *Node[K, V]
}

// Begin - position of the lowest key, same as End for an empty map
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{tree: m, node: m.root.first()}
}

// Last - position of the highest key, same as End for an empty map
func (m *Map[K, V]) Last() Iterator[K, V] {
	return Iterator[K, V]{tree: m, node: m.root.last()}
}

// End - the position one past the highest key
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{tree: m, node: nil}
}

// IsEnd - true for the end position
func (it Iterator[K, V]) IsEnd() bool {
	return nil == it.node
}

// Valid - true if the iterator refers to a node still in a tree
func (it Iterator[K, V]) Valid() bool {
	return nil != it.node && it.node.alive()
}

// Node - the underlying node, nil for the end position
func (it Iterator[K, V]) Node() *Node[K, V] {
	return it.node
}

// check that the position can be dereferenced
func (it Iterator[K, V]) check() error {
	if nil == it.node {
		return fault.ErrDereferenceEnd
	}
	if !it.node.alive() {
		return fault.ErrInvalidIterator
	}
	return nil
}

// Key - the key at the position
func (it Iterator[K, V]) Key() (K, error) {
	if err := it.check(); nil != err {
		var zero K
		return zero, err
	}
	return it.node.key, nil
}

// Value - pointer to the value at the position, it can be used to
// modify the value in place
func (it Iterator[K, V]) Value() (*V, error) {
	if err := it.check(); nil != err {
		return nil, err
	}
	return &it.node.value, nil
}

// Next - advance to the next highest key, stepping from the last node
// gives End and stepping from End fails
func (it *Iterator[K, V]) Next() error {
	if nil == it.node {
		return fault.ErrIncrementEnd
	}
	if !it.node.alive() {
		return fault.ErrInvalidIterator
	}
	it.node = it.node.Next()
	return nil
}

// Prev - move to the next lowest key, stepping back from End gives the
// last node and stepping back from Begin fails leaving the position
// unchanged
func (it *Iterator[K, V]) Prev() error {
	if nil == it.node {
		if nil == it.tree || nil == it.tree.root {
			return fault.ErrDecrementBegin
		}
		it.node = it.tree.root.last()
		return nil
	}
	if !it.node.alive() {
		return fault.ErrInvalidIterator
	}
	p := it.node.Prev()
	if nil == p {
		return fault.ErrDecrementBegin
	}
	it.node = p
	return nil
}

// All - iterate over all pairs in ascending key order
//
// the current node may be erased inside the loop
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := m.root.first(); nil != p && p.alive(); {
			n := p.Next()
			if !yield(p.key, p.value) {
				return
			}
			p = n
		}
	}
}

// Backward - iterate over all pairs in descending key order
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := m.root.last(); nil != p && p.alive(); {
			n := p.Prev()
			if !yield(p.key, p.value) {
				return
			}
			p = n
		}
	}
}

// Keys - all keys in ascending order
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for p := m.root.first(); nil != p; p = p.Next() {
		keys = append(keys, p.key)
	}
	return keys
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node[K, V]) Next() *Node[K, V] {
	if p.right != nil {
		return p.right.first()
	}
	for {
		up := p.up
		if up == nil {
			return nil
		}
		if up.left == p {
			return up
		}
		p = up
	}
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes.
func (p *Node[K, V]) Prev() *Node[K, V] {
	if p.left != nil {
		return p.left.last()
	}
	for {
		up := p.up
		if up == nil {
			return nil
		}
		if up.right == p {
			return up
		}
		p = up
	}
}
