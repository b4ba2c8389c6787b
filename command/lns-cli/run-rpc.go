// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/loki-project/lnsd/command/lns-cli/rpccalls"
	"github.com/loki-project/lnsd/fault"
)

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Info()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runResolve(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Resolve(name, c.String("type"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runMapping(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Mapping(name, c.StringSlice("type"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runValidateEntry(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.String("file")
	if "" == fileName {
		return fault.ErrMissingParameters
	}
	entry, err := readEntryFile(fileName)
	if nil != err {
		return err
	}
	hfVersion := c.Uint("hf-version")
	if hfVersion > 255 {
		return fault.ErrInvalidCount
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Validate(entry.Transaction, uint8(hfVersion))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
