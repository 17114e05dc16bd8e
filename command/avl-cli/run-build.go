// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlmap/avl"
)

type pairJSON struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type buildReply struct {
	Size    int        `json:"size"`
	Height  int        `json:"height"`
	Ignored []string   `json:"ignored,omitempty"`
	Missing []string   `json:"missing,omitempty"`
	Pairs   []pairJSON `json:"pairs"`
}

func runBuild(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	pairs := c.StringSlice("pair")
	if 0 == len(pairs) {
		return fmt.Errorf("at least one pair is required")
	}

	tree, reply, err := build(pairs, c.StringSlice("erase"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "inserted: %d  erased: %d\n", len(pairs)-len(reply.Ignored), len(c.StringSlice("erase"))-len(reply.Missing))
	}

	if c.Bool("tree") {
		tree.Print(m.w, true)
		printStatistics(m.w, tree.Stats())
	}

	return printJson(m.w, reply)
}

// insert each pair in order then erase keys, duplicates never overwrite
func build(pairs []string, erase []string) (*avl.Map[string, string], *buildReply, error) {

	tree := avl.New[string, string]()
	reply := &buildReply{}

	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok || "" == key {
			return nil, nil, fmt.Errorf("pair: %q is not KEY=VALUE", p)
		}
		if _, added := tree.Insert(key, value); !added {
			reply.Ignored = append(reply.Ignored, key)
		}
	}

	for _, key := range erase {
		if !tree.Delete(key) {
			reply.Missing = append(reply.Missing, key)
		}
	}

	reply.Size = tree.Size()
	reply.Height = tree.Height()
	reply.Pairs = make([]pairJSON, 0, tree.Size())
	for k, v := range tree.All() {
		reply.Pairs = append(reply.Pairs, pairJSON{Key: k, Value: v})
	}

	return tree, reply, nil
}

func printStatistics(w io.Writer, stats avl.Statistics) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"counter", "value"})
	t.AppendRows([]table.Row{
		{"inserts", stats.Inserts},
		{"erasures", stats.Erasures},
		{"rotate left", stats.RotateLeft},
		{"rotate right", stats.RotateRight},
		{"rotate left-right", stats.RotateLeftRight},
		{"rotate right-left", stats.RotateRightLeft},
	})
	t.AppendFooter(table.Row{"rotations", stats.Rotations()})
	t.Render()
}
