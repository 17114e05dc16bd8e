// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"github.com/bitmark-inc/avlmap/avl"
)

// Target - the container under test
type Target interface {
	Insert(key int, value int) bool
	Delete(key int) bool
	Find(key int) (int, bool)
	Size() int
	Keys() []int
	Validate() error
}

// optional interface for targets that count rotations
type statistician interface {
	Stats() avl.Statistics
}

// TreeTarget - adapt an AVL map to the Target interface
type TreeTarget struct {
	tree *avl.Map[int, int]
}

// NewTreeTarget - create a target over an empty map
func NewTreeTarget() *TreeTarget {
	return &TreeTarget{
		tree: avl.New[int, int](),
	}
}

// Tree - the underlying map
func (t *TreeTarget) Tree() *avl.Map[int, int] {
	return t.tree
}

// Insert - add key, false if it was already present
func (t *TreeTarget) Insert(key int, value int) bool {
	_, added := t.tree.Insert(key, value)
	return added
}

// Delete - erase key by position, false if it was absent
func (t *TreeTarget) Delete(key int) bool {
	pos := t.tree.Find(key)
	if pos.IsEnd() {
		return false
	}
	t.tree.Erase(pos)
	return true
}

// Find - value for key
func (t *TreeTarget) Find(key int) (int, bool) {
	v, err := t.tree.At(key)
	if nil != err {
		return 0, false
	}
	return *v, true
}

// Size - number of keys
func (t *TreeTarget) Size() int {
	return t.tree.Size()
}

// Keys - all keys in ascending order
func (t *TreeTarget) Keys() []int {
	return t.tree.Keys()
}

// Validate - structural check of the tree
func (t *TreeTarget) Validate() error {
	return t.tree.Validate()
}

// Stats - rotation and update counters
func (t *TreeTarget) Stats() avl.Statistics {
	return t.tree.Stats()
}
