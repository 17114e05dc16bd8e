// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/workload"
)

// summary of a run as a table
func printResult(w io.Writer, result workload.Result, stats avl.Statistics) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("avlcheck")
	t.AppendHeader(table.Row{"item", "count"})
	t.AppendRows([]table.Row{
		{"operations", result.Operations},
		{"inserts", result.Inserts},
		{"erases", result.Erases},
		{"finds", result.Finds},
		{"hits", result.Hits},
		{"validations", result.Validations},
		{"final size", result.Size},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"rotate left", stats.RotateLeft},
		{"rotate right", stats.RotateRight},
		{"rotate left-right", stats.RotateLeftRight},
		{"rotate right-left", stats.RotateRightLeft},
	})
	if 0 != result.FailedAt {
		t.AppendSeparator()
		t.AppendRow(table.Row{"failed at", result.FailedAt})
	}
	t.AppendFooter(table.Row{"elapsed", result.Elapsed.String()})
	t.Render()
}

// text exposition of all registered metrics
func printMetrics(w io.Writer, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if nil != err {
		return err
	}
	for _, f := range families {
		if _, err := expfmt.MetricFamilyToText(w, f); nil != err {
			return err
		}
	}
	return nil
}

// draw the tree unless it is too big to be readable
func printTree(w io.Writer, tree *avl.Map[int, int], limit int) {
	if tree.Size() > limit {
		fmt.Fprintf(w, "tree: %d nodes (not drawn, limit: %d)\n", tree.Size(), limit)
		return
	}
	depth := tree.Print(w, true)
	fmt.Fprintf(w, "depth: %d\n", depth)
}
