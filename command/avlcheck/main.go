// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/avlmap/background"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/workload"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "print-tree", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}
	if len(options["print-tree"]) > 0 {
		theConfiguration.PrintTree = true
	}
	quiet := len(options["quiet"]) > 0
	if quiet {
		theConfiguration.Logging.Console = false
	} else if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// these commands require the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// stop cleanly on a signal
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-ch
		log.Infof("received signal: %v", sig)
		cancel()
	}()

	registry := prometheus.NewRegistry()
	target := workload.NewTreeTarget()

	runner, err := workload.New(theConfiguration.Workload, target, registry)
	if nil != err {
		log.Criticalf("workload initialise error: %s", err)
		exitwithstatus.Message("workload initialise error: %s", err)
	}

	var processes background.Processes
	if theConfiguration.Workload.ReportInterval > 0 {
		interval := time.Duration(theConfiguration.Workload.ReportInterval) * time.Second
		processes = append(processes, workload.NewReporter(runner, interval))
	}
	reporters := background.Start(processes, nil)

	result, runErr := runner.Run(ctx)
	reporters.Stop()

	if !quiet {
		if theConfiguration.PrintTree {
			printTree(os.Stdout, target.Tree(), maximumPrintSize)
		}
		printResult(os.Stdout, result, target.Stats())
		if err := printMetrics(os.Stdout, registry); nil != err {
			log.Errorf("metrics error: %s", err)
		}
	}

	switch {
	case nil == runErr:
		log.Infof("passed: %d operations", result.Operations)
	case context.Canceled == runErr:
		log.Warnf("interrupted after: %d operations", result.Operations)
	default:
		log.Criticalf("failed at operation: %d  error: %s", result.FailedAt, runErr)
		exitwithstatus.Message("%s: failed at operation: %d  error: %s", program, result.FailedAt, runErr)
	}
}
