// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/fault"
)

var (
	ErrExistsOne     = fault.ExistsError("exists one ")
	ErrExistsTwo     = fault.ExistsError("exists two")
	ErrInvalidOne    = fault.InvalidError("invalid one")
	ErrInvalidTwo    = fault.InvalidError("invalid two")
	ErrNotFoundOne   = fault.NotFoundError("not found one")
	ErrNotFoundTwo   = fault.NotFoundError("not found two")
	ErrOutOfRangeOne = fault.OutOfRangeError("out of range one")
	ErrOutOfRangeTwo = fault.OutOfRangeError("out of range two")
	ErrProcessOne    = fault.ProcessError("process one")
	ErrProcessTwo    = fault.ProcessError("process two")
)

// test that the various error classes are distinct
func TestClasses(t *testing.T) {
	errorList := []struct {
		err        error
		exists     bool
		invalid    bool
		notFound   bool
		outOfRange bool
		process    bool
	}{
		{ErrExistsOne, true, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false},
		{ErrNotFoundOne, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, true, false, false},
		{ErrOutOfRangeOne, false, false, false, true, false},
		{ErrOutOfRangeTwo, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, true},
		{fault.ErrDereferenceEnd, false, false, false, true, false},
		{fault.ErrKeyNotFound, false, false, false, true, false},
		{fault.ErrInvalidIterator, false, true, false, false, false},
		{fault.ErrShadowMismatch, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrOutOfRange(err) != e.outOfRange {
			t.Errorf("%d: expected 'out of range' == %v for err = %v", i, e.outOfRange, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestErrorText(t *testing.T) {
	assert.Equal(t, "key not found", fault.ErrKeyNotFound.Error(), "wrong message")
	assert.Equal(t, "generic", fault.GenericError("generic").Error(), "wrong message")
}

func TestPanicWithoutLogger(t *testing.T) {
	assert.Equal(t, fault.ErrNotInitialised, fault.Finalise(), "finalise before initialise")
	assert.PanicsWithValue(t, "abort", func() {
		fault.Panic("abort")
	}, "did not panic")
	assert.NotPanics(t, func() {
		fault.PanicIfError("no error", nil)
	}, "panic on nil error")
	assert.Panics(t, func() {
		fault.PanicIfError("error", fault.ErrKeyOrder)
	}, "no panic on error")
}
