// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/background"
)

type reporter struct {
	log      *logger.L
	runner   *Runner
	interval time.Duration
}

// NewReporter - background process to log the progress of a runner
func NewReporter(runner *Runner, interval time.Duration) background.Process {
	return &reporter{
		log:      logger.New("report"),
		runner:   runner,
		interval: interval,
	}
}

// Run - log progress at every interval until shutdown
func (rep *reporter) Run(args interface{}, shutdown <-chan struct{}) {

	total := rep.runner.Configuration().Operations

	ticker := time.NewTicker(rep.interval)
	defer ticker.Stop()

	last := uint64(0)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			n := rep.runner.Progress()
			rate := float64(n-last) / rep.interval.Seconds()
			last = n
			rep.log.Infof("progress: %d/%d  rate: %.0f op/s", n, total, rate)
		}
	}
	rep.log.Infof("final progress: %d/%d", rep.runner.Progress(), total)
}
