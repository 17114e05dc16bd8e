// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// defaults for a short run
const (
	DefaultOperations     = 100000
	DefaultKeySpace       = 2000
	DefaultInsertWeight   = 5
	DefaultEraseWeight    = 3
	DefaultFindWeight     = 2
	DefaultValidateEvery  = 1000
	DefaultReportInterval = 10
)

// Configuration - parameters of a run
type Configuration struct {
	Seed           int64   `gluamapper:"seed" hcl:"seed" toml:"seed" yaml:"seed" json:"seed"`
	Operations     int     `gluamapper:"operations" hcl:"operations" toml:"operations" yaml:"operations" json:"operations"`
	KeySpace       int     `gluamapper:"key_space" hcl:"key_space" toml:"key_space" yaml:"key_space" json:"key_space"`
	Preload        int     `gluamapper:"preload" hcl:"preload" toml:"preload" yaml:"preload" json:"preload"`
	InsertWeight   int     `gluamapper:"insert_weight" hcl:"insert_weight" toml:"insert_weight" yaml:"insert_weight" json:"insert_weight"`
	EraseWeight    int     `gluamapper:"erase_weight" hcl:"erase_weight" toml:"erase_weight" yaml:"erase_weight" json:"erase_weight"`
	FindWeight     int     `gluamapper:"find_weight" hcl:"find_weight" toml:"find_weight" yaml:"find_weight" json:"find_weight"`
	// operations per second, 0 = unlimited
	Rate           float64 `gluamapper:"rate" hcl:"rate" toml:"rate" yaml:"rate" json:"rate"`
	// 0 = only at the end
	ValidateEvery  int     `gluamapper:"validate_every" hcl:"validate_every" toml:"validate_every" yaml:"validate_every" json:"validate_every"`
	// seconds
	ReportInterval int     `gluamapper:"report_interval" hcl:"report_interval" toml:"report_interval" yaml:"report_interval" json:"report_interval"`
}

// DefaultConfiguration - a configuration with all defaults filled in
func DefaultConfiguration() Configuration {
	return Configuration{
		Seed:           1,
		Operations:     DefaultOperations,
		KeySpace:       DefaultKeySpace,
		InsertWeight:   DefaultInsertWeight,
		EraseWeight:    DefaultEraseWeight,
		FindWeight:     DefaultFindWeight,
		ValidateEvery:  DefaultValidateEvery,
		ReportInterval: DefaultReportInterval,
	}
}

// Validate - check the values are usable
func (c Configuration) Validate() error {
	if c.Operations <= 0 {
		return fault.ErrInvalidCount
	}
	if c.KeySpace <= 0 {
		return fault.ErrInvalidCount
	}
	if c.Preload < 0 || c.Preload > c.KeySpace {
		return fault.ErrInvalidCount
	}
	if c.InsertWeight < 0 || c.EraseWeight < 0 || c.FindWeight < 0 {
		return fault.ErrInvalidCount
	}
	if 0 == c.InsertWeight+c.EraseWeight+c.FindWeight {
		return fault.ErrNoWeights
	}
	if c.Rate < 0 || c.ValidateEvery < 0 || c.ReportInterval < 0 {
		return fault.ErrInvalidCount
	}
	return nil
}
