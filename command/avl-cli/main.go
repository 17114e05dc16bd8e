// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "build and exercise AVL ordered maps"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "build",
			Usage:     "build a string map from key=value pairs",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "pair, p",
					Usage: "*insert `KEY=VALUE`, repeat for more pairs",
				},
				cli.StringSliceFlag{
					Name:  "erase, e",
					Usage: " erase `KEY` after all inserts, repeatable",
				},
				cli.BoolFlag{
					Name:  "tree, t",
					Usage: " draw the tree and show rotation counts",
				},
			},
			Action: runBuild,
		},
		{
			Name:      "run",
			Usage:     "randomised check of an integer map against a reference",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "operations, o",
					Value: 10000,
					Usage: " number of `COUNT` operations",
				},
				cli.IntFlag{
					Name:  "keys, k",
					Value: 1000,
					Usage: " keys are drawn from [0, `COUNT`)",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 1,
					Usage: " random `SEED`",
				},
			},
			Action: runRun,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
