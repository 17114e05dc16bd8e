// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Find - position of key or End if absent
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{tree: m, node: m.search(key)}
}

// Contains - true if key is present
func (m *Map[K, V]) Contains(key K) bool {
	return nil != m.search(key)
}

// Count - number of nodes with key: 0 or 1
func (m *Map[K, V]) Count(key K) int {
	if nil == m.search(key) {
		return 0
	}
	return 1
}

// At - pointer to the value for key, fails if key is absent
func (m *Map[K, V]) At(key K) (*V, error) {
	p := m.search(key)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	return &p.value, nil
}

// Get - copy of the value for key and whether it was present
func (m *Map[K, V]) Get(key K) (V, bool) {
	p := m.search(key)
	if nil == p {
		var zero V
		return zero, false
	}
	return p.value, true
}

// descend from the root comparing against each node
func (m *Map[K, V]) search(key K) *Node[K, V] {
	p := m.root
	for nil != p {
		switch c := m.compare(key, p.key); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}
