// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/bitmark-inc/avlmap/fault"
)

// ParseConfigurationFile - read a configuration file and assign the
// results to a configuration structure, fields absent from the file
// keep their current values
func ParseConfigurationFile(fileName string, config interface{}) error {

	if err := checkStructPointer(config); nil != err {
		return err
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".hcl":
		return readHCL(fileName, config)
	case ".toml":
		return readTOML(fileName, config)
	case ".yaml", ".yml":
		return readYAML(fileName, config)
	default:
		return readLua(fileName, config)
	}
}

// since interface{} is untyped, have to verify type compatibility at run-time
func checkStructPointer(config interface{}) error {
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fault.ErrInvalidStructPointer
	}

	// now sure item is a pointer, make sure it points to some kind of struct
	s := rv.Elem()
	if s.Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}
	return nil
}
