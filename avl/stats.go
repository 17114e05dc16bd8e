// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/counter"
)

// internal counters updated by the engines
type statistics struct {
	inserts         counter.Counter
	erasures        counter.Counter
	rotateLeft      counter.Counter
	rotateRight     counter.Counter
	rotateLeftRight counter.Counter
	rotateRightLeft counter.Counter
}

// Statistics - snapshot of the structural work done by a map
type Statistics struct {
	Inserts         uint64 `json:"inserts"`
	Erasures        uint64 `json:"erasures"`
	RotateLeft      uint64 `json:"rotateLeft"`
	RotateRight     uint64 `json:"rotateRight"`
	RotateLeftRight uint64 `json:"rotateLeftRight"`
	RotateRightLeft uint64 `json:"rotateRightLeft"`
}

// Stats - read the counters, safe to call from another goroutine
func (m *Map[K, V]) Stats() Statistics {
	return Statistics{
		Inserts:         m.stats.inserts.Uint64(),
		Erasures:        m.stats.erasures.Uint64(),
		RotateLeft:      m.stats.rotateLeft.Uint64(),
		RotateRight:     m.stats.rotateRight.Uint64(),
		RotateLeftRight: m.stats.rotateLeftRight.Uint64(),
		RotateRightLeft: m.stats.rotateRightLeft.Uint64(),
	}
}

// Rotations - total rebalancing steps, a double rotation counts once
func (s Statistics) Rotations() uint64 {
	return s.RotateLeft + s.RotateRight + s.RotateLeftRight + s.RotateRightLeft
}

// ResetStats - zero all counters
func (m *Map[K, V]) ResetStats() {
	m.stats.inserts.Reset()
	m.stats.erasures.Reset()
	m.stats.rotateLeft.Reset()
	m.stats.rotateRight.Reset()
	m.stats.rotateLeftRight.Reset()
	m.stats.rotateRightLeft.Reset()
}
