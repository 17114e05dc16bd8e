// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Erase - remove the node at a position
//
// no-op for the end position, for an already erased position and for
// a position that does not belong to this map
func (m *Map[K, V]) Erase(pos Iterator[K, V]) {
	q := pos.node
	if nil == q || !q.alive() || !m.owns(q) {
		return
	}
	m.remove(q)
}

// Delete - remove the node for key, returns false if key was absent
func (m *Map[K, V]) Delete(key K) bool {
	q := m.search(key)
	if nil == q {
		return false
	}
	m.remove(q)
	return true
}

// true if the live node q is reachable from this map's root
func (m *Map[K, V]) owns(q *Node[K, V]) bool {
	for nil != q.up {
		q = q.up
	}
	return q == m.root
}

// unlink q and rebalance upwards
//
// no data is copied: with two children the in-order predecessor node
// itself is moved into the place of q
func (m *Map[K, V]) remove(q *Node[K, V]) {
	var start *Node[K, V] // lowest node whose subtree changed

	if nil == q.left || nil == q.right {
		child := q.left
		if nil == child {
			child = q.right
		}
		start = q.up
		m.replaceChild(q.up, q, child)
	} else {
		r := q.left
		if nil == r.right {
			start = r
		} else {
			for nil != r.right {
				r = r.right
			}
			start = r.up
			start.right = r.left
			if nil != r.left {
				r.left.up = start
			}
			r.left = q.left
			q.left.up = r
		}
		r.right = q.right
		q.right.up = r
		r.height = q.height
		m.replaceChild(q.up, q, r)
	}

	q.kill()
	m.size -= 1
	m.stats.erasures.Increment()

	m.rebalanceUp(start)
}

// walk towards the root fixing heights and rotating where the
// children differ by two, stopping once a subtree height is unchanged
func (m *Map[K, V]) rebalanceUp(p *Node[K, V]) {
	for nil != p {
		up := p.up
		old := p.height
		p.fixHeight()
		n := m.rebalance(p)
		if n != p {
			m.replaceChild(up, p, n)
		}
		if n.height == old {
			return
		}
		p = up
	}
}
