// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"maps"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/avlmap/util"
	"github.com/bitmark-inc/avlmap/workload"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avlcheck.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	// larger trees are not drawn
	maximumPrintSize = 64
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"workload":        "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - the contents of the configuration file
type Configuration struct {
	PrintTree bool                   `gluamapper:"print_tree" hcl:"print_tree" toml:"print_tree" yaml:"print_tree" json:"print_tree"`
	Workload  workload.Configuration `gluamapper:"workload" hcl:"workload" toml:"workload" yaml:"workload" json:"workload"`
	Logging   logger.Configuration   `gluamapper:"logging" hcl:"logging" toml:"logging" yaml:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		PrintTree: false,
		Workload:  workload.DefaultConfiguration(),
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    maps.Clone(defaultLogLevels),
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.Workload.Validate(); nil != err {
		return nil, err
	}

	// log directory is created if missing
	options.Logging.Directory, err = util.EnsureDirectory(dataDirectory, options.Logging.Directory)
	if nil != err {
		return nil, err
	}

	return options, nil
}
