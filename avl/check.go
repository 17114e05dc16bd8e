// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// CheckUp - check the up pointers for consistency
func (m *Map[K, V]) CheckUp() bool {
	return checkup(m.root, nil)
}

// internal: consistency checker
func checkup[K, V any](p *Node[K, V], up *Node[K, V]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// Validate - check every structural property of the tree
//
// returns the first violation found: key order, parent link, cached
// height, balance or node count
func (m *Map[K, V]) Validate() error {
	v := validator[K, V]{
		compare: m.compare,
	}
	if err := v.walk(m.root, nil); nil != err {
		return err
	}
	if v.count != m.size {
		return fault.ErrSizeMismatch
	}
	return nil
}

type validator[K, V any] struct {
	compare func(a, b K) int
	prev    *Node[K, V]
	count   int
}

// in-order walk so that each key is compared with its predecessor
func (v *validator[K, V]) walk(p *Node[K, V], up *Node[K, V]) error {
	if nil == p {
		return nil
	}
	if p.up != up {
		return fault.ErrParentMismatch
	}
	if !p.alive() {
		return fault.ErrInvalidIterator
	}
	if err := v.walk(p.left, p); nil != err {
		return err
	}
	if nil != v.prev && v.compare(v.prev.key, p.key) >= 0 {
		return fault.ErrKeyOrder
	}
	v.prev = p
	v.count += 1
	if err := v.walk(p.right, p); nil != err {
		return err
	}

	l := height(p.left)
	r := height(p.right)
	h := 1 + max(l, r)
	if p.height != h {
		return fault.ErrHeightMismatch
	}
	if l-r > 1 || r-l > 1 {
		return fault.ErrUnbalanced
	}
	return nil
}
