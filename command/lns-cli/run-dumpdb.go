// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/loki-project/lnsd/account"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/ledger"
	"github.com/loki-project/lnsd/mapping"
	"github.com/loki-project/lnsd/ownership"
	"github.com/loki-project/lnsd/storage"
)

type dumpRecord struct {
	*ownership.Mapping
	Active bool `json:"active"`
}

type dumpReply struct {
	Settings *ownership.Settings `json:"settings"`
	Owner    *ownership.Owner    `json:"owner,omitempty"`
	Mappings []dumpRecord        `json:"mappings"`
}

func runDumpDB(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	directory := c.String("database")
	if "" == directory {
		return fault.ErrMissingParameters
	}
	name := c.String("name")
	ownerText := c.String("owner")
	switch {
	case "" == name && "" == ownerText:
		return ErrMissingQuery
	case "" != name && "" != ownerText:
		return ErrAmbiguousQuery
	}

	finalise, err := startLogging(m)
	if nil != err {
		return err
	}
	defer finalise()

	db, err := storage.Open(directory, storage.ReadOnly)
	if nil != err {
		return err
	}
	defer db.Close()

	l, err := ledger.Attach(m.network, db)
	if nil != err {
		return err
	}
	defer l.Close()

	settings, err := l.Settings()
	if nil != err {
		return err
	}
	reply := dumpReply{
		Settings: settings,
		Mappings: []dumpRecord{},
	}

	var mappings []*ownership.Mapping
	if "" != name {
		mappings, err = l.Mappings(mapping.All(), mapping.NameToHash(name))
	} else {
		var key account.PublicKey
		key, err = account.PublicKeyFromHex(ownerText)
		if nil != err {
			return err
		}
		reply.Owner, err = l.OwnerByKey(key)
		if nil != err {
			return err
		}
		mappings, err = l.MappingsByOwner(key)
	}
	if nil != err {
		return err
	}

	for _, record := range mappings {
		active, err := l.Active(record, settings.TopHeight)
		if nil != err {
			return err
		}
		reply.Mappings = append(reply.Mappings, dumpRecord{Mapping: record, Active: active})
	}

	return printJson(m.w, reply)
}
