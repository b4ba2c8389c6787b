// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/loki-project/lnsd/account"
)

type keyPairReply struct {
	Seed      string            `json:"seed"`
	PublicKey account.PublicKey `json:"public_key"`
}

func runKeygen(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var keyPair *account.KeyPair
	var err error
	if seed := c.String("seed"); "" != seed {
		keyPair, err = account.KeyPairFromHexSeed(seed)
	} else {
		keyPair, err = account.NewKeyPair(nil)
	}
	if nil != err {
		return err
	}

	return printJson(m.w, keyPairReply{
		Seed:      hex.EncodeToString(keyPair.Seed()),
		PublicKey: keyPair.PublicKey,
	})
}
