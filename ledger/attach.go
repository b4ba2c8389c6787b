// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"

	"github.com/loki-project/lnsd/consensus"
	"github.com/loki-project/lnsd/fault"
	"github.com/loki-project/lnsd/ownership"
	"github.com/loki-project/lnsd/storage"
)

// StoredSettings - the checkpoint of db, nil if it has never been set
func StoredSettings(db *storage.Database) (*ownership.Settings, error) {
	view, err := db.NewView()
	if nil != err {
		return nil, err
	}
	defer view.Release()

	return readSettings(view, &db.Pool)
}

// Attach - bind to db for queries only
//
// no consistency check is made against a host chain, so this works on a
// database opened read only; the settings must already exist
func Attach(network string, db *storage.Database) (*Ledger, error) {
	settings, err := StoredSettings(db)
	if nil != err {
		return nil, err
	}
	if nil == settings {
		return nil, fault.ErrNotInitialised
	}
	if storage.CurrentVersion != settings.Version {
		return nil, fault.ErrDatabaseVersion
	}

	l := &Ledger{
		log:     logger.New("ledger"),
		network: network,
		db:      db,
		pool:    &db.Pool,
		gate:    consensus.New(network),
		owners:  cache.New(ownerCacheExpiration, ownerCacheCleanup),
	}
	l.log.Infof("attached network: %s  checkpoint: %d", network, settings.TopHeight)
	return l, nil
}
