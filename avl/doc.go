// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an ordered map kept as an AVL height balanced tree
// with the addition of parent pointers to allow iteration through the
// nodes without a stack
//
// Note: an individual map is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its subtree (an absent subtree has
// height -1) and the cache is recomputed bottom-up after every
// rotation, insertion or splice.
//
// Keys are unique and an insert never overwrites an existing value,
// use Index or the value pointer from Find to modify in place.
// Delete does not copy data around: the in-order predecessor node is
// relinked into the place of the erased node, so iterators to all other
// nodes stay valid and the current node may be erased during
// iteration.
package avl
