// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/fault"
)

func sevenNodes() *Map[int, int] {
	m := New[int, int]()
	for i := 1; i <= 7; i += 1 {
		m.Insert(i, i)
	}
	return m
}

func TestValidateDetectsCorruption(t *testing.T) {
	m := sevenNodes()
	assert.NoError(t, m.Validate(), "fresh tree")
	assert.True(t, m.CheckUp(), "fresh tree up pointers")

	// cached height
	m.root.left.height += 1
	assert.Equal(t, fault.ErrHeightMismatch, m.Validate(), "height")
	m.root.left.height -= 1

	// parent link
	saved := m.root.left.up
	m.root.left.up = m.root.right
	assert.Equal(t, fault.ErrParentMismatch, m.Validate(), "parent")
	assert.False(t, m.CheckUp(), "check up")
	m.root.left.up = saved

	// key order
	m.root.left.key, m.root.right.key = m.root.right.key, m.root.left.key
	assert.Equal(t, fault.ErrKeyOrder, m.Validate(), "order")
	m.root.left.key, m.root.right.key = m.root.right.key, m.root.left.key

	// size
	m.size += 1
	assert.Equal(t, fault.ErrSizeMismatch, m.Validate(), "size")
	m.size -= 1

	assert.NoError(t, m.Validate(), "restored tree")
}

func TestValidateDetectsImbalance(t *testing.T) {
	// a right leaning chain with correct heights
	a := newNode(1, 1)
	b := newNode(2, 2)
	c := newNode(3, 3)
	a.right = b
	b.up = a
	b.right = c
	c.up = b
	b.fixHeight()
	a.fixHeight()

	m := New[int, int]()
	m.root = a
	m.size = 3
	assert.Equal(t, fault.ErrUnbalanced, m.Validate(), "chain")

	// rebalancing the chain fixes it
	m.root = m.rebalance(a)
	m.root.up = nil
	assert.NoError(t, m.Validate(), "after rotation")
	assert.Equal(t, 2, m.root.key, "new root")
	assert.Equal(t, uint64(1), m.Stats().RotateLeft, "rotation counted")
}

func TestRotationsKeepOrder(t *testing.T) {
	rotations := []func(*Node[int, int]) *Node[int, int]{
		rotateLeft[int, int],
		rotateRight[int, int],
	}
	for i, rotate := range rotations {
		m := sevenNodes()
		r := m.root
		n := rotate(r)
		m.replaceChild(nil, r, n)

		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, m.Keys(), "%d: order", i)
		assert.True(t, m.CheckUp(), "%d: up pointers", i)
		assert.Nil(t, m.root.up, "%d: root parent", i)
		assert.Equal(t, 3, m.root.height, "%d: root height", i)
	}
}

func TestDoubleRotationShape(t *testing.T) {
	// 3 with left child 1 which has right child 2
	p := newNode(3, 3)
	l := newNode(1, 1)
	g := newNode(2, 2)
	p.left = l
	l.up = p
	l.right = g
	g.up = l
	l.fixHeight()
	p.fixHeight()

	n := rotateLeftRight(p)
	assert.Equal(t, 2, n.key, "root")
	assert.Equal(t, 1, n.left.key, "left")
	assert.Equal(t, 3, n.right.key, "right")
	assert.Equal(t, n, n.left.up, "left parent")
	assert.Equal(t, n, n.right.up, "right parent")
	assert.Equal(t, 1, n.height, "height")
	assert.Equal(t, 0, n.left.height, "left height")
	assert.Equal(t, 0, n.right.height, "right height")
}

func TestReplaceChildCorrupt(t *testing.T) {
	m := sevenNodes()
	stranger := newNode(99, 99)
	assert.Panics(t, func() {
		m.replaceChild(m.root, stranger, nil)
	}, "corrupt relink not detected")
}

func TestKilledNode(t *testing.T) {
	m := sevenNodes()
	p := m.search(4)
	m.remove(p)
	assert.False(t, p.alive(), "alive after remove")
	assert.Nil(t, p.left, "left link kept")
	assert.Nil(t, p.right, "right link kept")
	assert.Nil(t, p.up, "up link kept")
	assert.True(t, m.owns(m.search(3)), "survivor not owned")
	assert.False(t, m.owns(p), "erased node owned")
	assert.NoError(t, m.Validate(), "validate")
}
