// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"

	"github.com/hashicorp/hcl"
)

// read a configuration file and parse using HCL
func readHCL(fileName string, config interface{}) error {

	b, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}

	return hcl.Unmarshal(b, config)
}
