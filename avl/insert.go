// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a new key/value, if the key already exists the existing
// value is left unchanged
//
// returns the position of the node holding key and true if it was
// added by this call
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	n, added := m.put(key, value)
	return Iterator[K, V]{tree: m, node: n}, added
}

// Index - pointer to the value for key, inserting the zero value first
// if the key is absent
func (m *Map[K, V]) Index(key K) *V {
	var zero V
	n, _ := m.put(key, zero)
	return &n.value
}

// common entry to the recursive insert
func (m *Map[K, V]) put(key K, value V) (*Node[K, V], bool) {
	root, n, added := m.insert(key, value, m.root)
	if added {
		m.root = root
		root.up = nil
		m.size += 1
		m.stats.inserts.Increment()
	}
	return n, added
}

// internal routine for insert
//
// returns the new subtree root, the node holding key and whether a
// node was added
func (m *Map[K, V]) insert(key K, value V, p *Node[K, V]) (*Node[K, V], *Node[K, V], bool) {
	if nil == p {
		n := newNode(key, value)
		return n, n, true
	}

	var n *Node[K, V]
	var added bool

	switch c := m.compare(key, p.key); {
	case c < 0:
		var l *Node[K, V]
		l, n, added = m.insert(key, value, p.left)
		if !added {
			return p, n, false
		}
		p.left = l
		l.up = p
	case c > 0:
		var r *Node[K, V]
		r, n, added = m.insert(key, value, p.right)
		if !added {
			return p, n, false
		}
		p.right = r
		r.up = p
	default:
		return p, p, false
	}

	p.fixHeight()

	switch b := p.balance(); {
	case b > 1:
		// left heavy: outer if key went to the left of the left child
		if m.compare(key, p.left.key) < 0 {
			m.stats.rotateRight.Increment()
			p = rotateRight(p)
		} else {
			m.stats.rotateLeftRight.Increment()
			p = rotateLeftRight(p)
		}
	case b < -1:
		if m.compare(key, p.right.key) > 0 {
			m.stats.rotateLeft.Increment()
			p = rotateLeft(p)
		} else {
			m.stats.rotateRightLeft.Increment()
			p = rotateRightLeft(p)
		}
	}
	return p, n, true
}
