// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/urfave/cli"

	"github.com/loki-project/lnsd/account"
	"github.com/loki-project/lnsd/digest"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/mapping"
	"github.com/loki-project/lnsd/namecrypt"
	"github.com/loki-project/lnsd/transactionrecord"
)

// output of build-entry, input of validate-entry
type entryReply struct {
	Name        string                         `json:"name"`
	Entry       *transactionrecord.Entry       `json:"entry"`
	Transaction *transactionrecord.Transaction `json:"transaction"`
}

func runBuildEntry(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c)
	if nil != err {
		return err
	}
	t, value, err := typeAndValue(m, c)
	if nil != err {
		return err
	}
	if err := mapping.ValidateName(t, name); nil != err {
		return err
	}

	seed := c.String("seed")
	if "" == seed {
		return fault.ErrInvalidPrivateKey
	}
	signer, err := account.KeyPairFromHexSeed(seed)
	if nil != err {
		return err
	}

	owner := signer.PublicKey
	if s := c.String("owner"); "" != s {
		owner, err = account.PublicKeyFromHex(s)
		if nil != err {
			return err
		}
	}

	prev := digest.Zero
	if s := c.String("prev"); "" != s {
		prev, err = digest.FromHex(s)
		if nil != err {
			return err
		}
	}

	encrypted, err := namecrypt.Encrypt(name, value)
	if nil != err {
		return err
	}

	entry := &transactionrecord.Entry{
		Type:           t,
		Owner:          owner,
		NameHash:       mapping.NameToHash(name),
		PrevTxId:       prev,
		EncryptedValue: encrypted,
	}
	entry.Sign(signer)

	tx, err := transactionrecord.NewNameSystemTransaction(transactionrecord.CurrentVersion, entry)
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "signed by: %s\n", signer.PublicKey)
	}

	return printJson(m.w, entryReply{
		Name:        name,
		Entry:       entry,
		Transaction: tx,
	})
}

// read a build-entry output file
func readEntryFile(fileName string) (*entryReply, error) {
	b, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	var reply entryReply
	if err := json.Unmarshal(b, &reply); nil != err {
		return nil, err
	}
	if nil == reply.Transaction {
		return nil, fault.ErrMissingParameters
	}
	return &reply, nil
}
