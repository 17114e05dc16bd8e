// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// ExistsError - to allow for different classes of errors
type ExistsError GenericError

// InvalidError - error for invalid operation or corrupt structure
type InvalidError GenericError

// NotFoundError - error when something is missing
type NotFoundError GenericError

// OutOfRangeError - error when a position or key is outside a container
type OutOfRangeError GenericError

// ProcessError - error for a failed background or test process
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrDecrementBegin       = OutOfRangeError("decrement before begin")
	ErrDereferenceEnd       = OutOfRangeError("dereference end position")
	ErrHeightMismatch       = InvalidError("cached height mismatch")
	ErrIncrementEnd         = OutOfRangeError("increment past end")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidIterator      = InvalidError("iterator refers to an erased node")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyNotFound          = OutOfRangeError("key not found")
	ErrKeyOrder             = InvalidError("keys out of order")
	ErrMissingConfiguration = NotFoundError("missing configuration")
	ErrNoWeights            = InvalidError("all operation weights are zero")
	ErrNotInitialised       = NotFoundError("not initialised")
	ErrParentMismatch       = InvalidError("parent link mismatch")
	ErrShadowMismatch       = ProcessError("target diverged from reference")
	ErrSizeMismatch         = InvalidError("size does not match node count")
	ErrUnbalanced           = InvalidError("subtree heights differ by more than one")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e OutOfRangeError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrOutOfRange(e error) bool { _, ok := e.(OutOfRangeError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
