// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a configuration file into a struct
//
// the format is chosen by file extension: ".hcl", ".toml", ".yaml" or
// ".yml", everything else is executed as Lua.
//
// for Lua most of base Lua is available such as reading files to set
// key data and getenv to extract environment supplied items; the file
// must return a table and the global arg[0] holds the file name.
//
// struct fields carry one tag per format, for example:
//
//	Seed int64 `gluamapper:"seed" hcl:"seed" toml:"seed" yaml:"seed"`
package configuration
