// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node[K, V any] struct {
	left   *Node[K, V] // left sub-tree
	right  *Node[K, V] // right sub-tree
	up     *Node[K, V] // points to parent node
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // 0 for a leaf, -1 once erased
}

// allocate a new leaf node
func newNode[K, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{
		key:    key,
		value:  value,
		height: 0,
	}
}

// height of a possibly absent subtree
func height[K, V any](p *Node[K, V]) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute the cached height from the children
func (p *Node[K, V]) fixHeight() {
	l := height(p.left)
	r := height(p.right)
	if l > r {
		p.height = 1 + l
	} else {
		p.height = 1 + r
	}
}

// left height minus right height
func (p *Node[K, V]) balance() int {
	return height(p.left) - height(p.right)
}

// a node that has been erased is detached and can never be reached
// from any tree again
func (p *Node[K, V]) alive() bool {
	return p.height >= 0
}

// detach an erased node so stale references cannot walk the tree
func (p *Node[K, V]) kill() {
	var zero V
	p.left = nil
	p.right = nil
	p.up = nil
	p.value = zero
	p.height = -1
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Left - return left child of a node
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - return right child of a node
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Height - cached height of the subtree rooted at this node
func (p *Node[K, V]) Height() int {
	return p.height
}

// Depth - get the depth of a node
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	nodes := []*Node[K, V]{}

	if depth == 0 {
		nodes = []*Node[K, V]{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}
