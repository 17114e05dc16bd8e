// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - randomised differential soak test for an ordered
// map
//
// a Runner drives a Target with a seeded random mix of insert, erase
// and find operations and checks every result against a reference
// B-tree holding the same pairs.  Periodically the full ascending key
// sequence is compared and the target's own structural validation is
// called.  The first divergence stops the run.
package workload
