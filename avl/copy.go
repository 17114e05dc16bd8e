// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Clone - deep copy into a new independent map with the same shape
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		root:    cloneTree(m.root, nil),
		size:    m.size,
		compare: m.compare,
	}
}

// CopyFrom - replace the contents by a deep copy of src
func (m *Map[K, V]) CopyFrom(src *Map[K, V]) {
	if m == src {
		return
	}
	m.Clear()
	m.root = cloneTree(src.root, nil)
	m.size = src.size
	m.compare = src.compare
}

// Move - transfer all nodes to a new map, leaving this one empty
func (m *Map[K, V]) Move() *Map[K, V] {
	n := &Map[K, V]{
		root:    m.root,
		size:    m.size,
		compare: m.compare,
	}
	m.root = nil
	m.size = 0
	return n
}

// MoveFrom - discard the current contents and take all nodes of src,
// leaving src empty
func (m *Map[K, V]) MoveFrom(src *Map[K, V]) {
	if m == src {
		return
	}
	m.Clear()
	m.root = src.root
	m.size = src.size
	m.compare = src.compare
	src.root = nil
	src.size = 0
}

// copy a subtree, heights are copied rather than recomputed
func cloneTree[K, V any](p *Node[K, V], up *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}
	n := &Node[K, V]{
		up:     up,
		key:    p.key,
		value:  p.value,
		height: p.height,
	}
	n.left = cloneTree(p.left, n)
	n.right = cloneTree(p.right, n)
	return n
}

// Equal - true if both maps hold the same pairs
func Equal[K, V comparable](a *Map[K, V], b *Map[K, V]) bool {
	return EqualFunc(a, b, func(x V, y V) bool {
		return x == y
	})
}

// EqualFunc - true if both maps have the same size and their ascending
// sequences match pairwise, keys are compared with a's ordering
func EqualFunc[K, V any](a *Map[K, V], b *Map[K, V], eq func(V, V) bool) bool {
	if a == b {
		return true
	}
	if a.size != b.size {
		return false
	}
	p := a.root.first()
	q := b.root.first()
	for nil != p && nil != q {
		if 0 != a.compare(p.key, q.key) || !eq(p.value, q.value) {
			return false
		}
		p = p.Next()
		q = q.Next()
	}
	return nil == p && nil == q
}
