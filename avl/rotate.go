// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// single left rotation, the right child is promoted
//
//	  p              r
//	 / \            / \
//	a   r    →     p   c
//	   / \        / \
//	  b   c      a   b
//
// the caller must link the returned node into the parent slot
func rotateLeft[K, V any](p *Node[K, V]) *Node[K, V] {
	r := p.right
	p.right = r.left
	if nil != r.left {
		r.left.up = p
	}
	r.left = p
	r.up = p.up
	p.up = r
	p.fixHeight()
	r.fixHeight()
	return r
}

// single right rotation, the left child is promoted
func rotateRight[K, V any](p *Node[K, V]) *Node[K, V] {
	l := p.left
	p.left = l.right
	if nil != l.right {
		l.right.up = p
	}
	l.right = p
	l.up = p.up
	p.up = l
	p.fixHeight()
	l.fixHeight()
	return l
}

// double rotation for the inner case below a left heavy node
func rotateLeftRight[K, V any](p *Node[K, V]) *Node[K, V] {
	p.left = rotateLeft(p.left)
	return rotateRight(p)
}

// double rotation for the inner case below a right heavy node
func rotateRightLeft[K, V any](p *Node[K, V]) *Node[K, V] {
	p.right = rotateRight(p.right)
	return rotateLeft(p)
}

// restore balance at a node whose children differ in height by two,
// choosing single or double rotation from the grandchild heights
//
// returns the new subtree root, or p if no rotation was needed
func (m *Map[K, V]) rebalance(p *Node[K, V]) *Node[K, V] {
	switch b := p.balance(); {
	case b > 1:
		if height(p.left.left) >= height(p.left.right) {
			m.stats.rotateRight.Increment()
			return rotateRight(p)
		}
		m.stats.rotateLeftRight.Increment()
		return rotateLeftRight(p)

	case b < -1:
		if height(p.right.right) >= height(p.right.left) {
			m.stats.rotateLeft.Increment()
			return rotateLeft(p)
		}
		m.stats.rotateRightLeft.Increment()
		return rotateRightLeft(p)
	}
	return p
}

// put n in the child slot of parent that old occupied
func (m *Map[K, V]) replaceChild(parent *Node[K, V], old *Node[K, V], n *Node[K, V]) {
	if nil != n {
		n.up = parent
	}
	switch {
	case nil == parent:
		m.root = n
	case parent.left == old:
		parent.left = n
	case parent.right == old:
		parent.right = n
	default:
		fault.Panicf("avl: node: %v is not a child of: %v", old.key, parent.key)
	}
}
