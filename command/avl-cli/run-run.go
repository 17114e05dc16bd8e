// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/util"
	"github.com/bitmark-inc/avlmap/workload"
)

type runReply struct {
	Passed     bool            `json:"passed"`
	Error      string          `json:"error,omitempty"`
	Result     workload.Result `json:"result"`
	Statistics avl.Statistics  `json:"statistics"`
}

func runRun(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	config := workload.DefaultConfiguration()
	config.Operations = c.Int("operations")
	config.KeySpace = c.Int("keys")
	config.Seed = c.Int64("seed")
	config.ReportInterval = 0

	if m.verbose {
		fmt.Fprintf(m.e, "operations: %d  keys: %d  seed: %d\n", config.Operations, config.KeySpace, config.Seed)
	}

	if err := config.Validate(); nil != err {
		return err
	}

	level := "critical"
	if m.verbose {
		level = "info"
	}
	directory, err := util.EnsureDirectory(os.TempDir(), "avl-cli")
	if nil != err {
		return err
	}
	err = logger.Initialise(logger.Configuration{
		Directory: directory,
		File:      "avl-cli.log",
		Size:      1048576,
		Count:     2,
		Console:   m.verbose,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	})
	if nil != err {
		return err
	}
	defer logger.Finalise()

	target := workload.NewTreeTarget()
	runner, err := workload.New(config, target, nil)
	if nil != err {
		return err
	}

	result, runErr := runner.Run(context.Background())

	reply := runReply{
		Passed:     nil == runErr,
		Result:     result,
		Statistics: target.Stats(),
	}
	if nil != runErr {
		reply.Error = runErr.Error()
	}

	if err := printJson(m.w, reply); nil != err {
		return err
	}
	return runErr
}
