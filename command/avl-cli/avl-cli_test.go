// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runApp(t *testing.T, arguments ...string) (string, string, error) {
	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	app := newApp(w, e)
	err := app.Run(append([]string{"avl-cli"}, arguments...))
	return w.String(), e.String(), err
}

func TestBuild(t *testing.T) {
	tree, reply, err := build([]string{"c=3", "a=1", "b=2", "a=9", "d=4"}, []string{"d", "x"})
	assert.Nil(t, err, "build")

	assert.Equal(t, 3, tree.Size(), "tree size")
	assert.Equal(t, 3, reply.Size, "reply size")
	assert.Equal(t, 1, reply.Height, "height")
	assert.Equal(t, []string{"a"}, reply.Ignored, "duplicate ignored")
	assert.Equal(t, []string{"x"}, reply.Missing, "absent erase")
	assert.Equal(t, []pairJSON{{"a", "1"}, {"b", "2"}, {"c", "3"}}, reply.Pairs, "ascending, first value kept")
	assert.Nil(t, tree.Validate(), "valid")
}

func TestBuildEmptyValue(t *testing.T) {
	_, reply, err := build([]string{"k="}, nil)
	assert.Nil(t, err, "empty value is allowed")
	assert.Equal(t, []pairJSON{{"k", ""}}, reply.Pairs, "pairs")
}

func TestBuildBadPair(t *testing.T) {
	_, _, err := build([]string{"novalue"}, nil)
	assert.NotNil(t, err, "missing =")

	_, _, err = build([]string{"=value"}, nil)
	assert.NotNil(t, err, "missing key")
}

func TestBuildCommand(t *testing.T) {
	out, _, err := runApp(t, "build", "--pair", "2=two", "--pair", "1=one", "-p", "3=three", "--erase", "2")
	assert.Nil(t, err, "run")

	reply := buildReply{}
	err = json.Unmarshal([]byte(out), &reply)
	assert.Nil(t, err, "decode: %s", out)
	assert.Equal(t, 2, reply.Size, "size")
	assert.Equal(t, []pairJSON{{"1", "one"}, {"3", "three"}}, reply.Pairs, "pairs")
}

func TestBuildCommandTree(t *testing.T) {
	out, stderr, err := runApp(t, "--verbose", "build", "--tree", "-p", "1=a", "-p", "2=b", "-p", "3=c")
	assert.Nil(t, err, "run")
	assert.Contains(t, out, "2 → b ^- h:1 +0", "tree drawing")
	assert.Contains(t, out, "rotations", "statistics footer")
	assert.Contains(t, stderr, "inserted: 3  erased: 0", "verbose")
}

func TestBuildCommandNoPairs(t *testing.T) {
	_, _, err := runApp(t, "build")
	assert.NotNil(t, err, "pairs are required")
}

func TestRunCommand(t *testing.T) {
	out, _, err := runApp(t, "run", "--operations", "2000", "--keys", "100", "--seed", "3")
	assert.Nil(t, err, "run")

	reply := runReply{}
	err = json.Unmarshal([]byte(out), &reply)
	assert.Nil(t, err, "decode: %s", out)
	assert.True(t, reply.Passed, "passed")
	assert.Equal(t, 2000, reply.Result.Operations, "operations")
	assert.Equal(t, reply.Result.Size, int(reply.Statistics.Inserts-reply.Statistics.Erasures), "size from counters")
}

func TestRunCommandBadKeys(t *testing.T) {
	_, _, err := runApp(t, "run", "--keys", "0")
	assert.NotNil(t, err, "invalid key space")
}

func TestVersion(t *testing.T) {
	out, _, err := runApp(t, "version")
	assert.Nil(t, err, "run")
	assert.Equal(t, version+"\n", out, "version")
}
