// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"

	"gopkg.in/yaml.v3"
)

// read a configuration file and parse using YAML
func readYAML(fileName string, config interface{}) error {

	b, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(b, config)
}
